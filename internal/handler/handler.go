package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mtlprog/proposedesk/docs" // Register API docs
	"github.com/mtlprog/proposedesk/internal/domain"
	"github.com/mtlprog/proposedesk/internal/handler/dto"
	"github.com/mtlprog/proposedesk/internal/metrics"
	"github.com/mtlprog/proposedesk/internal/middleware"
	"github.com/mtlprog/proposedesk/internal/service"
)

const healthTimeout = 3 * time.Second

// Pinger is a dependency checked by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	lists          *service.ListService
	notifications  *service.NotificationService
	metrics        *metrics.Metrics
	authMiddleware *middleware.AuthMiddleware
	corsOrigins    []string
	checks         map[string]Pinger
}

// New creates a new Handler instance with all dependencies.
func New(
	lists *service.ListService,
	notifications *service.NotificationService,
	accounts middleware.AccountFinder,
	m *metrics.Metrics,
	corsOrigins []string,
) *Handler {
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		lists:          lists,
		notifications:  notifications,
		metrics:        m,
		authMiddleware: middleware.NewAuthMiddleware(accounts, respondDomainError),
		corsOrigins:    corsOrigins,
		checks:         make(map[string]Pinger),
	}
}

// AddHealthCheck registers a dependency that must answer for /healthz to pass.
func (h *Handler) AddHealthCheck(name string, p Pinger) {
	h.checks[name] = p
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", h.metrics.Handler())
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// API v1 routes with authentication
	h.authed(mux, "GET /api/v1/catalog", h.handleGetCatalog)
	h.authed(mux, "GET /api/v1/suppliers", h.handleListSuppliers)
	h.authed(mux, "GET /api/v1/proposes/{id}", h.handleGetPropose)
	h.authed(mux, "POST /api/v1/proposes/{id}/move", h.handleMovePropose)

	h.authed(mux, "GET /api/v1/views/{view}/state", h.handleGetState)
	h.authed(mux, "POST /api/v1/views/{view}/page/next", h.handleNextPage)
	h.authed(mux, "POST /api/v1/views/{view}/page/previous", h.handlePreviousPage)
	h.authed(mux, "PUT /api/v1/views/{view}/page", h.handleMovePage)
	h.authed(mux, "PATCH /api/v1/views/{view}/filters", h.handleSetFilters)
	h.authed(mux, "DELETE /api/v1/views/{view}/filters", h.handleClearFilters)
	h.authed(mux, "PUT /api/v1/views/{view}/search", h.handleSearch)
	h.authed(mux, "DELETE /api/v1/views/{view}/state", h.handleResetView)

	h.authed(mux, "GET /api/v1/views/{view}/proposes", h.handleListProposes)
	h.authed(mux, "GET /api/v1/views/{view}/board", h.handleGetBoard)
	h.authed(mux, "GET /api/v1/views/{view}/export", h.handleExport)

	h.authed(mux, "GET /api/v1/users", h.handleListUsers)
	h.authed(mux, "POST /api/v1/users/{id}/notifications", h.handleNotifyUser)
	h.authed(mux, "GET /api/v1/notifications", h.handleListNotifications)
	h.authed(mux, "GET /api/v1/notifications/{id}", h.handleGetNotification)
	h.authed(mux, "PUT /api/v1/notifications/{id}/read", h.handleReadNotification)
}

// Routes returns the mux wrapped in the request middleware chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	chain := chi.Chain(
		chimw.RequestID,
		chimw.RealIP,
		middleware.RequestLogger(h.metrics),
		chimw.Recoverer,
	)
	if len(h.corsOrigins) > 0 {
		chain = append(chain, cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", chimw.RequestIDHeader},
			ExposedHeaders:   []string{"Content-Disposition", chimw.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	return chain.Handler(mux)
}

func (h *Handler) authed(mux *http.ServeMux, pattern string, fn http.HandlerFunc) {
	mux.Handle(pattern, h.authMiddleware.Authenticate(fn))
}

// handleHealthz returns 200 OK if every registered dependency answers.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			slog.Error("health check failed", "dependency", name, "error", err)
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	respondJSON(w, status, map[string]any{"checks": checks})
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError maps err to its status and machine code.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// requestAccount returns the authenticated account or writes a 401.
func requestAccount(w http.ResponseWriter, r *http.Request) (*domain.Account, bool) {
	account, err := middleware.GetAccountFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Authentication required")
		return nil, false
	}
	return account, true
}

// extractView returns the view path parameter or writes a 404.
func extractView(w http.ResponseWriter, r *http.Request) (domain.View, bool) {
	view := domain.View(r.PathValue("view"))
	if !view.IsValid() {
		respondError(w, http.StatusNotFound, "VIEW_NOT_FOUND", "view must be 'proposes', 'board' or 'users'")
		return "", false
	}
	return view, true
}

// extractProposeID extracts and validates the propose id path parameter.
func extractProposeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return extractID(w, r, "propose")
}

// extractID parses the numeric id path parameter of a resource.
func extractID(w http.ResponseWriter, r *http.Request, resource string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", resource+" id must be a positive integer")
		return 0, false
	}
	return id, true
}

// decodeJSON reads the request body into v or writes a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return false
	}
	return true
}

// queryBool parses a boolean query parameter; anything unparseable is false.
func queryBool(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	return err == nil && v
}
