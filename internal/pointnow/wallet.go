package pointnow

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pointnow/web/internal/models"
)

// UsageCachesParams controls expansion of the wallet listing. The embedded
// Business and ConfigType objects appear in the response only when the
// matching flag is set; callers must not assume they are always present.
type UsageCachesParams struct {
	BusinessID     string
	WithBusiness   bool
	WithConfigType bool
}

// UsageCaches returns the SMS-credit wallet records for a business.
func (c *Client) UsageCaches(ctx context.Context, params UsageCachesParams) ([]models.UsageCache, error) {
	q := url.Values{}
	setIfPresent(q, "business_id", params.BusinessID)
	if params.WithBusiness {
		q.Set("with_business", "true")
	}
	if params.WithConfigType {
		q.Set("with_config_type", "true")
	}

	var resp struct {
		Data []models.UsageCache `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/usage_caches", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
