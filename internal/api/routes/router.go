package routes

import (
	"net/http"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/handlers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/middleware"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	schoolHandler  *handlers.SchoolHandler
	reviewHandler  *handlers.ReviewHandler
	compareHandler *handlers.CompareHandler
	stateHandler   *handlers.StateHandler
	authHandler    *handlers.AuthHandler

	authMiddleware  *middleware.AuthMiddleware
	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	schoolHandler *handlers.SchoolHandler,
	reviewHandler *handlers.ReviewHandler,
	compareHandler *handlers.CompareHandler,
	stateHandler *handlers.StateHandler,
	authHandler *handlers.AuthHandler,
	authMiddleware *middleware.AuthMiddleware,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		schoolHandler:   schoolHandler,
		reviewHandler:   reviewHandler,
		compareHandler:  compareHandler,
		stateHandler:    stateHandler,
		authHandler:     authHandler,
		authMiddleware:  authMiddleware,
		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// School directory endpoints. Specific literals must be registered
	// before the {id} pattern so the mux does not shadow them.
	r.mux.HandleFunc("GET /api/schools", r.schoolHandler.ListSchools)
	r.mux.HandleFunc("GET /api/schools/search", r.schoolHandler.SearchSchools)
	r.mux.HandleFunc("GET /api/schools/suggest", r.schoolHandler.SuggestSchools)
	r.mux.HandleFunc("GET /api/schools/compare", r.compareHandler.CompareSchools)
	r.mux.HandleFunc("GET /api/schools/{id}", r.schoolHandler.GetSchool)

	// Review endpoints
	r.mux.HandleFunc("GET /api/schools/{id}/reviews", r.reviewHandler.ListSchoolReviews)
	if r.authMiddleware != nil {
		r.mux.HandleFunc("POST /api/schools/{id}/reviews", r.authMiddleware.RequireAuth(r.reviewHandler.CreateReview))
	} else {
		r.mux.HandleFunc("POST /api/schools/{id}/reviews", r.reviewHandler.CreateReview)
	}

	// Navigation state resolution
	r.mux.HandleFunc("GET /api/state/resolve", r.stateHandler.ResolveState)

	// Identity
	r.mux.HandleFunc("GET /api/auth/me", r.authHandler.Me)

	// Middleware chain, innermost first. CORS is outermost so cached
	// responses also carry its headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	if r.authMiddleware != nil {
		handler = r.authMiddleware.Middleware(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
