// This is a **mock authentication service**, designed to provide JWT tokens
// for the organization service, simulating user authentication.
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gartstein/orgchart/internal/org/auth"
	"github.com/gartstein/orgchart/internal/org/models"
	"go.uber.org/zap"
)

const (
	defaultPort   = "8081"       // Default port for the authentication service
	defaultSecret = "jwt_secret" // Secret for signing JWT
	defaultUserID = "12345"
	tokenTTL      = 24 * time.Hour
)

// TokenResponse represents the response structure
type TokenResponse struct {
	Token       string   `json:"token"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// tokenHandler issues a token for ?sub= carrying the permissions of ?role=
// (MANAGER when omitted).
func tokenHandler(secret string, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("sub")
		if userID == "" {
			userID = defaultUserID
		}
		roleName := strings.ToUpper(r.URL.Query().Get("role"))
		if roleName == "" {
			roleName = models.RoleManager
		}
		role, ok := models.LookupDefaultRole(roleName)
		if !ok {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}

		token, err := auth.GenerateToken(userID, role.Name, role.Permissions, secret, tokenTTL)
		if err != nil {
			logger.Error("Failed to generate token", zap.Error(err))
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		resp := TokenResponse{Token: token, Role: role.Name, Permissions: role.Permissions}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("Failed to encode token", zap.Error(err))
		}
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer func() {
		_ = logger.Sync()
	}()

	secret := getEnv("JWT_SECRET", defaultSecret)
	port := getEnv("AUTH_PORT", defaultPort)

	mux := http.NewServeMux()
	mux.HandleFunc("/token", tokenHandler(secret, logger))

	logger.Info("Authentication service running", zap.String("port", port))
	server := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Authentication service stopped", zap.Error(err))
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
