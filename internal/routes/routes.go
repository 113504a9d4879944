package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pointnow/web/internal/config"
	"github.com/pointnow/web/internal/handlers"
	"github.com/pointnow/web/internal/middleware"
	"github.com/pointnow/web/internal/pointnow"
	"github.com/pointnow/web/internal/session"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, api *pointnow.Client, sessions *session.Manager, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(api, sessions, cfg)
	publicHandler := handlers.NewPublicHandler(api)
	profileHandler := handlers.NewProfileHandler(api)
	customersHandler := handlers.NewCustomersHandler(api)
	pointsHandler := handlers.NewPointsHandler(api)
	blastHandler := handlers.NewBlastHandler(api)
	analyticsHandler := handlers.NewAnalyticsHandler(api)
	rewardsHandler := handlers.NewRewardsHandler(api)
	businessHandler := handlers.NewBusinessHandler(api)
	billingHandler := handlers.NewBillingHandler(api)

	app.Use(middleware.LoadSession(cfg, sessions))

	apiGroup := app.Group("/api")

	// Public screens
	apiGroup.Get("/landing", publicHandler.Landing)
	apiGroup.Get("/leaderboard", publicHandler.Leaderboard)

	// Auth
	auth := apiGroup.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/phone/request", authHandler.RequestOTP)
	auth.Post("/phone/verify", authHandler.VerifyOTP)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", authHandler.Me)

	// Customer profile
	apiGroup.Get("/profile", middleware.RequireAuth(), profileHandler.Profile)

	// Operator dashboard
	dashboard := apiGroup.Group("/dashboard", middleware.RequireOperator())

	customers := dashboard.Group("/customers")
	customers.Get("/", customersHandler.List)
	customers.Post("/", customersHandler.Create)
	customers.Put("/:id", customersHandler.Update)
	customers.Delete("/:id", customersHandler.Delete)
	customers.Post("/import", customersHandler.Import)
	customers.Post("/import/confirm", customersHandler.ImportConfirm)
	customers.Get("/export", customersHandler.Export)

	dashboard.Post("/points", pointsHandler.Add)
	dashboard.Post("/redeem", pointsHandler.Redeem)
	dashboard.Get("/transactions", pointsHandler.Transactions)

	dashboard.Get("/wallet", blastHandler.Wallet)
	dashboard.Post("/blast", blastHandler.Send)

	dashboard.Get("/analytics", analyticsHandler.Overview)

	rewards := dashboard.Group("/rewards")
	rewards.Get("/", rewardsHandler.List)
	rewards.Post("/", rewardsHandler.Create)
	rewards.Put("/:id", rewardsHandler.Update)
	rewards.Delete("/:id", rewardsHandler.Delete)

	dashboard.Get("/redemptions", rewardsHandler.Redemptions)
	dashboard.Put("/redemptions/:id/status", rewardsHandler.UpdateRedemptionStatus)

	business := dashboard.Group("/business")
	business.Get("/", businessHandler.Get)
	business.Put("/", businessHandler.Update)
	business.Get("/stats", businessHandler.Stats)

	branches := dashboard.Group("/branches")
	branches.Get("/", businessHandler.ListBranches)
	branches.Post("/", businessHandler.CreateBranch)
	branches.Put("/:id", businessHandler.UpdateBranch)
	branches.Delete("/:id", businessHandler.DeleteBranch)

	staff := dashboard.Group("/staff")
	staff.Get("/", businessHandler.ListStaff)
	staff.Post("/", businessHandler.CreateStaff)
	staff.Put("/:id", businessHandler.UpdateStaff)
	staff.Delete("/:id", businessHandler.DeleteStaff)

	dashboard.Get("/subscription", billingHandler.Subscription)
	dashboard.Post("/checkout", billingHandler.Checkout)
	dashboard.Get("/checkout/:id", billingHandler.CheckoutStatus)
}
