package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// TransactionsMeta is the pagination block on transaction listings. This
// resource spells the previous-page flag has_prev, unlike the customers
// resource; both spellings are preserved as-is.
type TransactionsMeta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// TransactionList is a page of transactions plus its pagination block.
type TransactionList struct {
	Transactions []models.Transaction `json:"transactions"`
	Meta         TransactionsMeta     `json:"meta"`
}

// ListTransactionsParams filters the point ledger.
type ListTransactionsParams struct {
	BusinessID string
	CustomerID string
	Page       int
	Limit      int
}

// ListTransactions returns one page of the point ledger. Customer and staff
// detail expansion is always requested; the dashboard has no use for bare
// ledger rows.
func (c *Client) ListTransactions(ctx context.Context, params ListTransactionsParams) (*TransactionList, error) {
	q := url.Values{}
	setIfPresent(q, "business_id", params.BusinessID)
	setIfPresent(q, "customer_id", params.CustomerID)
	setIfPositive(q, "page", params.Page)
	setIfPositive(q, "limit", params.Limit)
	q.Set("with_customer_detail", "true")
	q.Set("with_staff_detail", "true")

	var resp struct {
		Data []models.Transaction `json:"data"`
		Meta TransactionsMeta     `json:"meta"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions", q, nil, &resp); err != nil {
		return nil, err
	}
	return &TransactionList{Transactions: resp.Data, Meta: resp.Meta}, nil
}
