package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/eduforum-dev/eduforum/internal/middleware"
	"github.com/eduforum-dev/eduforum/internal/middleware/metrics"
	rl "github.com/eduforum-dev/eduforum/internal/middleware/ratelimiter"
	"github.com/eduforum-dev/eduforum/internal/setup"
)

// New creates and configures a new mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints combined in that subrouter
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)

	// setup CORS for the web/mobile clients
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"http://localhost:8081"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	))

	r.Use(metrics.Middleware)

	// Add a wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	// Coarse cap across the whole API, one shared bucket
	v1.Use(mw.GlobalRateLimit(rl.New(500, 1000, 1*time.Hour)))

	// Read routes (no auth needed to browse), limited per client IP
	reads := v1.NewRoute().Subrouter()
	reads.Use(mw.RateLimit(rl.Rps100(), mw.GetIP))
	reads.HandleFunc("/categories", h.GetCategories).Methods("GET")
	reads.HandleFunc("/posts", h.ListPosts).Methods("GET")
	reads.HandleFunc("/posts/{post}", h.GetPost).Methods("GET")

	// Mutating routes need an authenticated principal
	loggedIn := v1.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())
	loggedIn.Use(mw.RateLimit(rl.Rps10(), mw.GetUserIdFromContext))

	// CreatePost: 1 per second per user on top of the shared limit
	loggedIn.Handle("/posts", mw.RateLimit(rl.OnceInSecond(), mw.GetUserIdFromContext)(http.HandlerFunc(h.CreatePost))).Methods("POST")
	loggedIn.HandleFunc("/posts/{post}/comments", h.CreateComment).Methods("POST")
	loggedIn.HandleFunc("/posts/{post}/vote", h.VotePost).Methods("POST")
	loggedIn.HandleFunc("/comments/{comment}/vote", h.VoteComment).Methods("POST")

	// Admin routes
	admin := v1.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.AdminOnly())
	admin.Use(mw.RateLimit(rl.New(10, 10, 1*time.Hour), mw.GetUserIdFromContext))
	admin.HandleFunc("/posts/{post}/pin", h.TogglePinnedPost).Methods("POST")

	return r
}
