package pointnow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures the query string of the last request and answers
// with an empty data array.
func recordingServer(t *testing.T) (*Client, *url.Values) {
	t.Helper()
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	}))
	t.Cleanup(server.Close)
	return New(server.URL), &got
}

func TestListCustomersQueryOmitsAbsentFilters(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.ListCustomers(context.Background(), ListCustomersParams{BusinessID: "b1"})
	require.NoError(t, err)

	assert.Equal(t, "b1", got.Get("business_id"))
	for _, key := range []string{"page", "limit", "search"} {
		_, present := (*got)[key]
		assert.False(t, present, "unexpected query key %q", key)
	}
}

func TestListCustomersQueryIncludesSetFilters(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.ListCustomers(context.Background(), ListCustomersParams{
		BusinessID: "b1",
		Page:       3,
		Limit:      50,
		Search:     "amy",
	})
	require.NoError(t, err)

	assert.Equal(t, "3", got.Get("page"))
	assert.Equal(t, "50", got.Get("limit"))
	assert.Equal(t, "amy", got.Get("search"))
}

func TestListTransactionsAlwaysExpandsDetails(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.ListTransactions(context.Background(), ListTransactionsParams{BusinessID: "b1"})
	require.NoError(t, err)

	assert.Equal(t, "true", got.Get("with_customer_detail"))
	assert.Equal(t, "true", got.Get("with_staff_detail"))
	_, present := (*got)["customer_id"]
	assert.False(t, present)
}

func TestRewardsByBusinessActiveFilterIsString(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.RewardsByBusiness(context.Background(), "b1", RewardsByBusinessParams{IsActive: "true"})
	require.NoError(t, err)
	assert.Equal(t, "true", got.Get("is_active"))

	_, err = client.RewardsByBusiness(context.Background(), "b1", RewardsByBusinessParams{})
	require.NoError(t, err)
	_, present := (*got)["is_active"]
	assert.False(t, present, "absent filter must not be sent as is_active=")
}

func TestUsageCachesExpansionFlags(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.UsageCaches(context.Background(), UsageCachesParams{BusinessID: "b1"})
	require.NoError(t, err)
	assert.Empty(t, got.Get("with_business"))
	assert.Empty(t, got.Get("with_config_type"))

	_, err = client.UsageCaches(context.Background(), UsageCachesParams{
		BusinessID:     "b1",
		WithBusiness:   true,
		WithConfigType: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "true", got.Get("with_business"))
	assert.Equal(t, "true", got.Get("with_config_type"))
}

func TestLeaderboardWindowIsOptional(t *testing.T) {
	client, got := recordingServer(t)

	_, err := client.Leaderboard(context.Background(), LeaderboardParams{})
	require.NoError(t, err)
	assert.Empty(t, *got)

	_, err = client.Leaderboard(context.Background(), LeaderboardParams{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
		Limit:     25,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got.Get("start_date"))
	assert.Equal(t, "2025-01-31", got.Get("end_date"))
	assert.Equal(t, "25", got.Get("limit"))
}
