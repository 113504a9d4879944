package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPointsForBusiness(t *testing.T) {
	t.Run("MatchingBusinessEntryWins", func(t *testing.T) {
		customer := Customer{
			TotalPoints: intPtr(999),
			Points:      intPtr(123),
			CustomerBusinesses: []CustomerBusiness{
				{BusinessID: "biz-2", TotalPoints: 70},
				{BusinessID: "biz-1", TotalPoints: 50},
			},
		}
		assert.Equal(t, 50, customer.PointsForBusiness("biz-1"))
	})

	t.Run("FallsBackToTotalPoints", func(t *testing.T) {
		customer := Customer{
			TotalPoints: intPtr(200),
			Points:      intPtr(123),
			CustomerBusinesses: []CustomerBusiness{
				{BusinessID: "biz-2", TotalPoints: 70},
			},
		}
		assert.Equal(t, 200, customer.PointsForBusiness("biz-1"))
	})

	t.Run("FallsBackToLegacyPoints", func(t *testing.T) {
		customer := Customer{Points: intPtr(123)}
		assert.Equal(t, 123, customer.PointsForBusiness("biz-1"))
	})

	t.Run("ZeroTotalPointsStillWinsOverLegacy", func(t *testing.T) {
		// Present-but-zero is a real balance, not an absent field.
		customer := Customer{TotalPoints: intPtr(0), Points: intPtr(123)}
		assert.Equal(t, 0, customer.PointsForBusiness("biz-1"))
	})

	t.Run("AllAbsentMeansZero", func(t *testing.T) {
		customer := Customer{}
		assert.Equal(t, 0, customer.PointsForBusiness("biz-1"))
	})
}
