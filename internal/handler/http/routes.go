package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type accessKind int

const (
	accessPublic accessKind = iota
	accessGuest
	accessAuthenticated
	accessRoles
)

// access describes who may call a route.
type access struct {
	kind  accessKind
	roles []models.Role
}

var (
	public        = access{kind: accessPublic}
	guest         = access{kind: accessGuest}
	authenticated = access{kind: accessAuthenticated}
)

func roles(r ...models.Role) access {
	return access{kind: accessRoles, roles: r}
}

// guards builds the middleware chain enforcing a.
func (a access) guards() []func(http.Handler) http.Handler {
	switch a.kind {
	case accessGuest:
		return []func(http.Handler) http.Handler{guestOnly}
	case accessAuthenticated:
		return []func(http.Handler) http.Handler{requireAuth}
	case accessRoles:
		return []func(http.Handler) http.Handler{requireRoles(a.roles...)}
	default:
		return nil
	}
}

type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	access  access
}

func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/", h.hello, public},
		{http.MethodGet, "/health", h.health, public},
		{http.MethodGet, "/version", h.getServerVersion, public},
		{http.MethodGet, "/metrics", promhttp.Handler().ServeHTTP, public},

		{http.MethodPost, "/auth/login", h.login, guest},
		{http.MethodPost, "/auth/register", h.register, guest},
		{http.MethodPost, "/auth/refresh", h.refresh, authenticated},
		{http.MethodGet, "/auth/me", h.me, authenticated},

		{http.MethodPost, "/users", h.createUser, roles(models.RoleAdmin)},
		{http.MethodGet, "/users", h.listUsers, roles(models.RoleAdmin)},
		{http.MethodGet, "/users/search", h.searchUsers, roles(models.RoleAdmin)},
		{http.MethodGet, "/users/{id}", h.getUser, roles(models.RoleAdmin)},
		{http.MethodPut, "/users/{id}", h.updateUser, roles(models.RoleAdmin)},
		{http.MethodPut, "/users/password/{id}", h.forceUpdatePassword, roles(models.RoleAdmin)},
		{http.MethodPut, "/users/role/{id}", h.updateRole, roles(models.RoleAdmin)},
		{http.MethodPut, "/users/email/{id}", h.updateEmail, roles(models.RoleAdmin)},
		{http.MethodDelete, "/users/{id}", h.removeUser, roles(models.RoleAdmin)},
		{http.MethodPut, "/users/update/me", h.updateMe, roles(models.RoleUser)},
		{http.MethodPut, "/users/me/password", h.updateMyPassword, roles(models.RoleUser)},

		{http.MethodGet, "/posts", h.listPosts, public},
		{http.MethodGet, "/posts/{id}", h.getPost, public},
		{http.MethodPost, "/posts", h.createPost, authenticated},
		{http.MethodPut, "/posts/{id}", h.updatePost, authenticated},
		{http.MethodDelete, "/posts/{id}", h.deletePost, authenticated},

		{http.MethodPut, "/profile", h.saveProfile, authenticated},
		{http.MethodGet, "/profile", h.getProfile, authenticated},
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		h.withMetrics,
		middleware.Compress(5, "application/json", "text/plain"),
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withIdentity)

	for _, rt := range h.routes() {
		router.With(rt.access.guards()...).Method(rt.method, rt.pattern, rt.handler)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
