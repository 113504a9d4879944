package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
)

// AnalyticsHandler serves the dashboard's analytics screen.
type AnalyticsHandler struct {
	api *pointnow.Client
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(api *pointnow.Client) *AnalyticsHandler {
	return &AnalyticsHandler{api: api}
}

const topCustomersLimit = 10

// Overview fetches the summary block, top customers and historical series
// together. All three must succeed or the batch fails; the screen renders
// either a complete dashboard or a single retryable error, never a partial
// one.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	_, businessID, err := operatorContext(c)
	if err != nil {
		return err
	}

	window := pointnow.AnalyticsWindow{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	granularity := c.Query("granularity", "day")
	api := sessionClient(c, h.api)

	var (
		summary *pointnow.AnalyticsSummary
		top     []models.Customer
		history []pointnow.HistoryPoint
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		summary, err = api.AnalyticsSummaryFor(ctx, businessID, window)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = api.TopCustomers(ctx, businessID, topCustomersLimit, window)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = api.History(ctx, businessID, granularity, window)
		return err
	})
	if err := g.Wait(); err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"summary":       summary,
			"top_customers": top,
			"history":       history,
		},
	})
}
