package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/importer"
	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// CustomersHandler serves the dashboard's customer management screen.
type CustomersHandler struct {
	api *pointnow.Client
}

// NewCustomersHandler constructs CustomersHandler.
func NewCustomersHandler(api *pointnow.Client) *CustomersHandler {
	return &CustomersHandler{api: api}
}

// List returns one page of the business's customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}
	p := utils.ParsePagination(c)

	list, err := sessionClient(c, h.api).ListCustomers(c.Context(), pointnow.ListCustomersParams{
		BusinessID: businessID,
		Page:       p.Page,
		Limit:      p.Limit,
		Search:     c.Query("search"),
	})
	if err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": list.Customers, "meta": list.Meta})
}

type customerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (r *customerRequest) validate() map[string][]string {
	fieldErrors := map[string][]string{}
	if strings.TrimSpace(r.Name) == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "name is required")
	}
	if r.Email != "" && !utils.IsValidEmail(r.Email) {
		fieldErrors["email"] = append(fieldErrors["email"], "invalid email format")
	}
	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}

// Create registers a customer for the operator's business.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		return validationError(c, fieldErrors)
	}

	params := pointnow.CreateCustomerParams{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		BusinessID: businessID,
	}
	if req.PhoneNumber != "" {
		params.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	customer, err := sessionClient(c, h.api).CreateCustomer(c.Context(), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": customer})
}

// Update patches a customer.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		return validationError(c, fieldErrors)
	}

	params := pointnow.CreateCustomerParams{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		BusinessID: businessID,
	}
	if req.PhoneNumber != "" {
		params.PhoneNumber = utils.NormalizePhone(req.PhoneNumber)
	}

	customer, err := sessionClient(c, h.api).UpdateCustomer(c.Context(), c.Params("id"), params)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": customer})
}

// Delete removes a customer.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if _, _, err := operatorContext(c); err != nil {
		return err
	}

	if err := sessionClient(c, h.api).DeleteCustomer(c.Context(), c.Params("id")); err != nil {
		return respondAPIError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Import parses an uploaded spreadsheet into a validated preview. Valid rows
// and row errors are both returned; the confirm step decides whether a
// partially valid file may be uploaded.
func (h *CustomersHandler) Import(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	result, err := importer.ParseCustomerFile(fileHeader.Filename, file, businessID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported or corrupt file")
	}

	return c.JSON(result)
}

type importConfirmRequest struct {
	Customers []models.ParsedCustomer `json:"customers"`
}

// ImportConfirm uploads a previously previewed batch.
func (h *CustomersHandler) ImportConfirm(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	var req importConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Customers) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no customers to import")
	}

	for i := range req.Customers {
		req.Customers[i].BusinessID = businessID
	}

	result, err := sessionClient(c, h.api).BulkCreateCustomers(c.Context(), req.Customers)
	if err != nil {
		return respondAPIError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": result})
}

// exportPageSize bounds each backend fetch while walking the full listing.
const exportPageSize = 500

// Export streams the full customer list as an xlsx attachment.
func (h *CustomersHandler) Export(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	api := sessionClient(c, h.api)
	var customers []models.Customer
	for page := 1; ; page++ {
		list, err := api.ListCustomers(c.Context(), pointnow.ListCustomersParams{
			BusinessID: businessID,
			Page:       page,
			Limit:      exportPageSize,
		})
		if err != nil {
			return respondAPIError(c, err)
		}
		customers = append(customers, list.Customers...)
		if !list.Meta.HasNext {
			break
		}
	}

	workbook, err := importer.BuildCustomerWorkbook(customers, businessID)
	if err != nil {
		return err
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return err
	}

	filename := importer.ExportFilename(time.Now())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
