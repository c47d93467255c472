package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/eduforum-dev/eduforum/internal/domain"
	"github.com/eduforum-dev/eduforum/internal/jwt"
)

// Key to store the principal in the request context
type key int

const PrincipalKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires an authenticated principal
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that requires the administrator role
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := a.extractPrincipal(r)
			if err != nil {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}
			if adminOnly && principal.Role != domain.RoleAdministrator {
				http.Error(w, "Administrator only", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractPrincipal(r *http.Request) (*domain.Principal, error) {
	// Cookie first (browser clients), then Authorization header (API/mobile)
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	return a.jwtService.DecodePrincipal(tokenString)
}

var errNoToken = errorString("no token")

type errorString string

func (e errorString) Error() string { return string(e) }

// Possible if principal was authorized with previous middleware
func GetPrincipalFromContext(r *http.Request) *domain.Principal {
	principal, _ := r.Context().Value(PrincipalKey).(*domain.Principal)
	return principal
}
