package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// Route is a protected HTTP route. Pattern segments written as {name}
// match any single path segment.
type Route struct {
	Method     string
	Pattern    string
	Permission string
}

func HTTPMiddleware(next http.Handler, jwtSecret string, routes []Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, protected := matchRoute(routes, r)
		if !protected {
			next.ServeHTTP(w, r)
			return
		}

		tokenString, err := extractTokenFromHeader(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		actor := claims.Actor()
		if route.Permission != "" && !actor.Has(route.Permission) {
			http.Error(w, fmt.Sprintf("permission %s required", route.Permission), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}

	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return "", fmt.Errorf("invalid authorization format")
	}

	return tokenString, nil
}

func matchRoute(routes []Route, r *http.Request) (Route, bool) {
	path := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	for _, route := range routes {
		if route.Method != r.Method {
			continue
		}
		if matchSegments(strings.Split(strings.Trim(route.Pattern, "/"), "/"), path) {
			return route, true
		}
	}
	return Route{}, false
}

func matchSegments(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, segment := range pattern {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if segment != path[i] {
			return false
		}
	}
	return true
}
