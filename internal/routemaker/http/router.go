package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/routemaker/api/routemaker" // Swagger docs
	"github.com/aussiebroadwan/routemaker/internal/routemaker/metrics"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/service"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/httpx"
	"github.com/aussiebroadwan/routemaker/pkg/jwtx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// Options tunes the global middleware chain.
type Options struct {
	CORSAllowedOrigins []string
	IsDevelopment      bool

	// TrustedProxies decides whose X-Forwarded-For is believed when
	// rate limiting by address. Empty means none.
	TrustedProxies httpx.TrustedProxies
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	proxies      httpx.TrustedProxies
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	OrganizationService *service.OrganizationService
	InvitationService   *service.InvitationService
	ProfileService      *service.ProfileService
	ProjectService      *service.ProjectService
	LocationService     *service.LocationService
	TechnicianService   *service.TechnicianService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		proxies:      opts.TrustedProxies,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// metrics.Middleware reads the matched pattern, so it must sit directly
	// on the mux.
	r.middlewares = []httpx.Middleware{
		middleware.Recoverer,
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(opts.CORSAllowedOrigins),
		httpx.SecureHeaders(opts.IsDevelopment),
		metrics.Middleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOrganizations()
	r.registerInvitations()
	r.registerProfiles()
	r.registerProjects()
	r.registerLocations()
	r.registerTechnicians()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			RouteMaker API
//	@version		0.1.0
//	@description	Multi-tenant API for planning field service routes. Organizations own projects, locations and technicians; members are invited by email.
//	@description
//	@description				All /v1 endpoints except invitation lookup require an HS256 access token issued by the identity provider.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/routemaker
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// read wraps an authenticated, lenient-limited endpoint.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.proxies.RateLimitByUser(httpx.LenientLimit),
	)
}

// write wraps an authenticated, moderately limited endpoint.
func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.proxies.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{OrganizationService: r.OrganizationService}

	r.Mux.Handle("GET /v1/organizations", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/organizations", r.write(h.HandleCreate))
	r.Mux.Handle("GET /v1/organizations/{id}", r.read(h.HandleGet))
	r.Mux.Handle("PATCH /v1/organizations/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/organizations/{id}", r.write(h.HandleDelete))

	r.Mux.Handle("GET /v1/organizations/{id}/members", r.read(h.HandleListMembers))
	r.Mux.Handle("PATCH /v1/organizations/{id}/members/{memberId}", r.write(h.HandleUpdateMember))
	r.Mux.Handle("DELETE /v1/organizations/{id}/members/{memberId}", r.write(h.HandleRemoveMember))
	r.Mux.Handle("POST /v1/organizations/{id}/leave", r.write(h.HandleLeave))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	r.Mux.Handle("GET /v1/organizations/{id}/invitations", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/invitations", r.write(h.HandleCreate))
	r.Mux.Handle("DELETE /v1/invitations/{id}", r.write(h.HandleRevoke))

	// GET /invitations/token/{token} - public, strict limit by IP against token guessing
	r.Mux.Handle("GET /v1/invitations/token/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleGetByToken),
			r.proxies.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invitations/accept/{token} - the email claim is compared to the invited address
	r.Mux.Handle("POST /v1/invitations/accept/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireEmailClaim(),
			r.proxies.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/profiles/me", r.read(h.HandleGetMe))
	r.Mux.Handle("PATCH /v1/profiles/me", r.write(h.HandleUpdateMe))
	r.Mux.Handle("GET /v1/profiles/{userId}", r.read(h.HandleGet))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /v1/organizations/{id}/projects", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/projects", r.write(h.HandleCreate))
	r.Mux.Handle("GET /v1/projects/{id}", r.read(h.HandleGet))
	r.Mux.Handle("PATCH /v1/projects/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/projects/{id}", r.write(h.HandleDelete))
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{LocationService: r.LocationService}

	r.Mux.Handle("GET /v1/organizations/{id}/locations", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/locations", r.write(h.HandleCreate))
	r.Mux.Handle("GET /v1/locations/{id}", r.read(h.HandleGet))
	r.Mux.Handle("PUT /v1/locations/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/locations/{id}", r.write(h.HandleDelete))
	r.Mux.Handle("POST /v1/locations/import", r.write(h.HandleImport))

	// Geocoding spends provider quota, so both endpoints get the strict limit.
	geocode := func(h http.HandlerFunc) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			r.proxies.RateLimitByUser(httpx.StrictLimit),
		)
	}
	r.Mux.Handle("POST /v1/locations/{id}/geocode", geocode(h.HandleGeocode))
	r.Mux.Handle("POST /v1/locations/geocode-bulk", geocode(h.HandleGeocodeBulk))
}

func (r *Router) registerTechnicians() {
	h := &TechniciansHandler{TechnicianService: r.TechnicianService}

	r.Mux.Handle("GET /v1/organizations/{id}/technicians", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/technicians", r.write(h.HandleCreate))
	r.Mux.Handle("GET /v1/technicians/{id}", r.read(h.HandleGet))
	r.Mux.Handle("PUT /v1/technicians/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/technicians/{id}", r.write(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limit (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.proxies.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			r.proxies.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
