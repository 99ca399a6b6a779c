package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkravets/localtalent/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	prof *handlers.ProfileHandler,
	jobs *handlers.ListingHandler,
	apps *handlers.ApplicationHandler,
	tal *handlers.TalentHandler,
	notif *handlers.NotificationHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	p := v1.Group("/profile", authMW)
	p.Get("/", prof.Get)
	p.Post("/", prof.Create)
	p.Put("/", prof.Update)
	p.Get("/watch", prof.Watch)

	j := v1.Group("/jobs", authMW)
	j.Post("/", jobs.Create)
	j.Get("/", jobs.Browse)
	j.Get("/mine", jobs.ListOwn)
	j.Get("/:id", jobs.Get)
	j.Put("/:id", jobs.Update)
	j.Delete("/:id", jobs.Delete)
	j.Post("/:id/applications", apps.Submit)
	j.Get("/:id/applications", apps.ListForListing)

	ap := v1.Group("/applications", authMW)
	ap.Get("/", apps.ListOwn)
	ap.Get("/received", apps.ListReceived)
	ap.Put("/:id/status", apps.UpdateStatus)

	t := v1.Group("/talent", authMW)
	t.Post("/", tal.Create)
	t.Get("/", tal.Browse)
	t.Get("/mine", tal.ListOwn)
	t.Put("/:id", tal.Update)
	t.Delete("/:id", tal.Delete)

	n := v1.Group("/notifications", authMW)
	n.Get("/", notif.List)
	n.Put("/:id/read", notif.MarkRead)
}
