package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pointnow/web/internal/models"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/utils"
)

// PublicHandler serves the landing page payload and the public leaderboard.
type PublicHandler struct {
	api *pointnow.Client
}

// NewPublicHandler constructs PublicHandler.
func NewPublicHandler(api *pointnow.Client) *PublicHandler {
	return &PublicHandler{api: api}
}

// Landing returns the marketing payload. The fetches run together and the
// whole batch fails if any of them does; a landing page with half its data
// is worse than an error the screen can retry.
func (h *PublicHandler) Landing(c *fiber.Ctx) error {
	var (
		plans   []models.SubscriptionPlan
		regions []models.Region
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		plans, err = h.api.ListPlans(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		regions, err = h.api.ListRegions(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"plans":   plans,
			"regions": regions,
		},
	})
}

// Leaderboard returns the public point ranking, optionally windowed.
func (h *PublicHandler) Leaderboard(c *fiber.Ctx) error {
	p := utils.ParsePagination(c)

	customers, err := h.api.Leaderboard(c.Context(), pointnow.LeaderboardParams{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Limit:     p.Limit,
	})
	if err != nil {
		return respondAPIError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": customers})
}
