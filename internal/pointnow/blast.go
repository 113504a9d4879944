package pointnow

import (
	"context"
	"net/http"

	"github.com/pointnow/web/internal/models"
)

// BlastProviderResponse is the SMS provider's acknowledgement as relayed by
// the backend.
type BlastProviderResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id,omitempty"`
	Sent      int    `json:"sent"`
	Failed    int    `json:"failed"`
}

// BlastResult carries both the post-debit wallet record and the provider
// acknowledgement. The two halves are nested in the backend response and are
// deliberately not flattened here.
type BlastResult struct {
	UsageCache models.UsageCache     `json:"usage_cache"`
	Provider   BlastProviderResponse `json:"provider"`
}

// SendBlast sends a bulk SMS to the given phone numbers and debits the
// business's wallet.
func (c *Client) SendBlast(ctx context.Context, message string, phoneNumbers []string, businessID string) (*BlastResult, error) {
	body := map[string]any{
		"message":       message,
		"phone_numbers": phoneNumbers,
		"business_id":   businessID,
	}

	var resp struct {
		Data BlastResult `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/blast/send", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
