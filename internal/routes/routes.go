package routes

import (
	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/handlers"
	"github.com/arscholarpoint/scholarpoint-server/internal/middleware"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/arscholarpoint/scholarpoint-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Setup is the complete route → guard policy table. Every route states its
// access level inline: no guard means Public and is a deliberate decision.
// Historically the scholarship, category, and review write routes shipped
// without any guard; they now require a session and (for listing writes) an
// elevated role.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	users *services.UserService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	scholarshipHandler *handlers.ScholarshipHandler,
	applicationHandler *handlers.ApplicationHandler,
	reviewHandler *handlers.ReviewHandler,
	paymentHandler *handlers.PaymentHandler,
	subscriberHandler *handlers.SubscriberHandler,
	healthHandler *handlers.HealthHandler,
) {
	session := middleware.SessionProtected(cfg)
	adminOnly := middleware.RequireRole(users, models.RoleAdmin)
	staffOnly := middleware.RequireRole(users, models.RoleAdmin, models.RoleAgent)
	selfOnly := middleware.SelfOrRole(users, middleware.TargetParam("email"))
	selfOrStaff := middleware.SelfOrRole(users, middleware.TargetParam("email"), models.RoleAdmin, models.RoleAgent)

	// Liveness
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Sessions
	app.Post("/jwt", authHandler.IssueSession)
	app.Post("/logout", authHandler.Logout)

	// Identities
	app.Post("/users", userHandler.Create)
	app.Get("/users/:email", session, selfOnly, userHandler.Verify)
	app.Get("/allUsers", session, adminOnly, userHandler.List)
	app.Patch("/updateUser/:id", session, adminOnly, userHandler.UpdateRole)
	app.Delete("/users/:id", session, adminOnly, userHandler.Delete)
	app.Get("/checkAdmin/:email", session, selfOnly, userHandler.CheckAdmin)
	app.Get("/checkAgent/:email", session, selfOnly, userHandler.CheckAgent)

	// Scholarships
	app.Get("/scholarships", scholarshipHandler.List)
	app.Get("/scholarshipsLimit", scholarshipHandler.ListPage)
	app.Get("/scholarshipsCount", scholarshipHandler.Count)
	app.Get("/scholarship/:id", scholarshipHandler.Get)
	app.Post("/scholarships", session, staffOnly, scholarshipHandler.Create)
	app.Put("/scholarship/:id", session, staffOnly, scholarshipHandler.Replace)
	app.Delete("/scholarship/:id", session, staffOnly, scholarshipHandler.Delete)

	// Categories
	app.Get("/category", scholarshipHandler.ListCategories)
	app.Post("/category", session, staffOnly, scholarshipHandler.CreateCategory)

	// Applications
	app.Post("/scholarshipApply", session, applicationHandler.Create)
	app.Get("/scholarshipApply", session, staffOnly, applicationHandler.ListAll)
	app.Get("/scholarshipApply/:email", session, selfOrStaff, applicationHandler.ListByEmail)
	app.Put("/scholarshipApply/:id", session, applicationHandler.Replace)
	app.Patch("/scholarshipApply/:id", session, staffOnly, applicationHandler.PatchStatus)
	app.Delete("/scholarshipApply/:id", session, applicationHandler.Delete)

	// Reviews
	app.Get("/reviews", reviewHandler.List)
	app.Get("/review/:email", session, selfOnly, reviewHandler.ListByReviewer)
	app.Post("/reviews", session, reviewHandler.Create)
	app.Put("/review/:id", session, reviewHandler.Replace)
	app.Delete("/review/:id", session, reviewHandler.Delete)

	// Payments
	app.Post("/create-payment-intent", session, paymentHandler.CreateIntent)
	app.Post("/payments", session, paymentHandler.Record)
	app.Get("/payments/:email", session, selfOnly, paymentHandler.ListByEmail)

	// Newsletter
	app.Post("/subscriber", subscriberHandler.Subscribe)
	app.Get("/checkSubscriber", subscriberHandler.Check)
}
