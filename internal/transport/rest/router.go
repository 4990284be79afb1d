package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/speedsales/studio-backend/internal/config"
	"github.com/speedsales/studio-backend/internal/transport/middleware"
	"github.com/speedsales/studio-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Actor, error)
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Command   *CommandHandler
	Catalog   *CatalogHandler
	Support   *SupportHandler
	Marketing *MarketingHandler
	OpsLog    *OpsLogHandler
}

// RouterDeps holds the cross-cutting pieces of the HTTP stack.
type RouterDeps struct {
	Log       *slog.Logger
	Tokens    tokenValidator
	Limiter   *middleware.RateLimiter
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter builds the HTTP API. Everything except the health endpoints
// requires a bearer token; the endpoints that call the language model are
// rate limited per user.
func NewRouter(deps RouterDeps, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
	)

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens, deps.Log))

		r.With(deps.Limiter.Limit("command", deps.RateLimit.CommandsPerMinute)).Post("/command", h.Command.Post)
		r.Get("/command", h.Command.History)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Catalog.ListProducts)
			r.Post("/", h.Catalog.CreateProduct)
			r.Put("/{id}", h.Catalog.UpdateProduct)
			r.Delete("/{id}", h.Catalog.DeleteProduct)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Catalog.ListOrders)
			r.Post("/", h.Catalog.CreateOrder)
			r.Delete("/{id}", h.Catalog.DeleteOrder)
		})
		r.Get("/expenses", h.Catalog.ListExpenses)

		r.Route("/inquiries", func(r chi.Router) {
			r.Get("/", h.Support.List)
			r.Post("/", h.Support.Create)
			r.Put("/{id}", h.Support.Update)
			r.Patch("/{id}/status", h.Support.SetStatus)
			r.Delete("/{id}", h.Support.Delete)
		})

		r.Route("/operations-log", func(r chi.Router) {
			r.Get("/", h.OpsLog.List)
			r.Post("/", h.OpsLog.Create)
			r.Put("/{id}", h.OpsLog.Update)
			r.Delete("/{id}", h.OpsLog.Delete)
		})

		r.Route("/marketing/copy", func(r chi.Router) {
			r.With(deps.Limiter.Limit("copy", deps.RateLimit.CommandsPerMinute)).Post("/", h.Marketing.Generate)
			r.Get("/", h.Marketing.List)
		})
	})

	return r
}
