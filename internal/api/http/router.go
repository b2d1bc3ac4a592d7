package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/landlordly/internal/api/http/handlers"
	"github.com/spec-kit/landlordly/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Invites        *handlers.InvitesHandler
	Properties     *handlers.PropertiesHandler
	Payments       *handlers.PaymentsHandler
	Maintenance    *handlers.MaintenanceHandler
	Messages       *handlers.MessagesHandler
	Notices        *handlers.NoticesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Role middleware is attached per route
// because landlord and tenant endpoints share path prefixes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/users/register", cfg.Users.Register)
	authGroup.Post("/users/login", cfg.Users.Login)
	authGroup.Post("/password/reset/request", cfg.Users.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Users.ConfirmPasswordReset)

	authed := cfg.AuthMiddleware.Handle
	anyRole := auth.RequireAnyRole()
	landlord := auth.RequireLandlord()
	tenant := auth.RequireTenant()

	authGroup.Get("/users/me", authed, anyRole, cfg.Users.Me)
	authGroup.Post("/password/change", authed, anyRole, cfg.Users.ChangePassword)
	authGroup.Post("/2fa/setup", authed, anyRole, cfg.Users.SetupTwoFactor)
	authGroup.Post("/2fa/verify", authed, anyRole, cfg.Users.VerifyTwoFactor)

	app.Post("/invites", authed, landlord, cfg.Invites.Issue)

	app.Post("/properties", authed, landlord, cfg.Properties.CreateProperty)
	app.Get("/properties", authed, landlord, cfg.Properties.ListProperties)
	app.Delete("/properties/:id", authed, landlord, cfg.Properties.DeleteProperty)
	app.Post("/properties/:id/units", authed, landlord, cfg.Properties.AddUnit)
	app.Get("/properties/:id/units", authed, landlord, cfg.Properties.ListUnits)
	app.Patch("/units/:id", authed, landlord, cfg.Properties.UpdateUnit)
	app.Get("/units/mine", authed, tenant, cfg.Properties.MyUnit)

	app.Post("/payments", authed, tenant, cfg.Payments.MakePayment)
	app.Get("/payments/history", authed, tenant, cfg.Payments.History)
	app.Get("/payments/upcoming", authed, tenant, cfg.Payments.Upcoming)
	app.Patch("/payments/:id/status", authed, landlord, cfg.Payments.UpdateStatus)

	app.Post("/maintenance", authed, tenant, cfg.Maintenance.Create)
	app.Get("/maintenance", authed, anyRole, cfg.Maintenance.List)
	app.Patch("/maintenance/:id/status", authed, landlord, cfg.Maintenance.UpdateStatus)

	app.Get("/messages", authed, anyRole, cfg.Messages.List)
	app.Post("/messages", authed, anyRole, cfg.Messages.Send)

	app.Post("/notices", authed, landlord, cfg.Notices.Send)
	app.Get("/notices", authed, tenant, cfg.Notices.List)
	app.Post("/notices/:id/ack", authed, tenant, cfg.Notices.Acknowledge)
}
