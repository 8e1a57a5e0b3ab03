package http

import (
	"log/slog"
	"os"

	"github.com/glowlabs/salon-backend-go/internal/domain/user"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/middleware"
	"github.com/glowlabs/salon-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	JWTService          jwt.Service
	AuthHandler         AuthHandler
	TenantHandler       TenantHandler
	EmployeeHandler     EmployeeHandler
	ClientHandler       ClientHandler
	MasterHandler       MasterHandler
	ShiftHandler        ShiftHandler
	AppointmentHandler  AppointmentHandler
	WaitlistHandler     WaitlistHandler
	NotificationHandler NotificationHandler
	RedisClient         *redis.Client
	ClaimRateLimit      middleware.RateLimitConfig
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "salon-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// SSE stream authenticates through a short-lived token in the query
		// string, not the Authorization header.
		r.Get("/notifications/stream", deps.NotificationHandler.Stream)

		// Tenant signup is the only unauthenticated write.
		r.Post("/tenants", deps.TenantHandler.Create)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService))

			r.Post("/auth/logout", deps.AuthHandler.Logout)

			r.Route("/tenants", func(r chi.Router) {
				r.Use(middleware.RequireOwner)
				r.Get("/", deps.TenantHandler.List)
				r.Get("/{id}", deps.TenantHandler.Get)
				r.Put("/{id}", deps.TenantHandler.Update)
				r.Delete("/{id}", deps.TenantHandler.Delete)
			})

			// Everything below operates inside one tenant.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireTenant)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", deps.EmployeeHandler.List)
					r.Get("/{id}", deps.EmployeeHandler.Get)
					r.Get("/{employeeID}/shifts", deps.ShiftHandler.ListByEmployee)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
						r.Post("/", deps.EmployeeHandler.Create)
						r.Put("/{id}", deps.EmployeeHandler.Update)
						r.Delete("/{id}", deps.EmployeeHandler.Delete)
					})
				})

				r.Route("/clients", func(r chi.Router) {
					r.Get("/", deps.ClientHandler.List)
					r.Get("/{id}", deps.ClientHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionClientManage))
						r.Post("/", deps.ClientHandler.Create)
						r.Put("/{id}", deps.ClientHandler.Update)
						r.Delete("/{id}", deps.ClientHandler.Delete)
					})
				})

				r.Route("/services", func(r chi.Router) {
					r.Get("/", deps.MasterHandler.ListServices)
					r.Get("/{id}", deps.MasterHandler.GetService)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionCatalogManage))
						r.Post("/", deps.MasterHandler.CreateService)
						r.Put("/{id}", deps.MasterHandler.UpdateService)
						r.Delete("/{id}", deps.MasterHandler.DeleteService)
					})
				})

				r.Route("/facilities", func(r chi.Router) {
					r.Get("/", deps.MasterHandler.ListFacilities)
					r.Get("/{id}", deps.MasterHandler.GetFacility)
					r.Get("/{facilityID}/shifts", deps.ShiftHandler.ListByFacility)
					r.Get("/{facilityID}/schedule", deps.AppointmentHandler.Schedule)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionCatalogManage))
						r.Post("/", deps.MasterHandler.CreateFacility)
						r.Put("/{id}", deps.MasterHandler.UpdateFacility)
						r.Delete("/{id}", deps.MasterHandler.DeleteFacility)
					})
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/{id}", deps.ShiftHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionShiftManage))
						r.Post("/", deps.ShiftHandler.Create)
						r.Put("/{id}", deps.ShiftHandler.Update)
						r.Delete("/{id}", deps.ShiftHandler.Delete)
					})
				})

				r.Route("/appointments", func(r chi.Router) {
					r.Get("/", deps.AppointmentHandler.List)
					r.Get("/{id}", deps.AppointmentHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionAppointmentManage))
						r.Post("/", deps.AppointmentHandler.Create)
						r.Put("/{id}/reschedule", deps.AppointmentHandler.Reschedule)
						r.Delete("/{id}", deps.AppointmentHandler.Cancel)
					})

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Use(middleware.RequirePermission(user.PermissionAppointmentBulk))
						r.Post("/bulk/generate", deps.AppointmentHandler.BulkGenerate)
						r.Post("/bulk/submit", deps.AppointmentHandler.BulkSubmit)
					})
				})

				r.Route("/waitlist", func(r chi.Router) {
					r.Post("/", deps.WaitlistHandler.Join)
					r.Get("/", deps.WaitlistHandler.List)
					r.Delete("/{id}", deps.WaitlistHandler.Remove)

					// rate limited to slow down token guessing
					r.With(middleware.RateLimit(deps.ClaimRateLimit, deps.RedisClient)).
						Post("/claim", deps.WaitlistHandler.Claim)
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", deps.NotificationHandler.List)
					r.Get("/unread-count", deps.NotificationHandler.UnreadCount)
					r.Put("/read", deps.NotificationHandler.MarkAsRead)
					r.Put("/read-all", deps.NotificationHandler.MarkAllAsRead)
					r.Delete("/{id}", deps.NotificationHandler.Delete)
					r.Get("/sse-token", deps.NotificationHandler.GetSSEToken)
				})
			})
		})
	})
	return r
}
