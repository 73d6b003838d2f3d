package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORS allows the configured frontends to call the API with the session cookie
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", AuthorizationHeader, IdempotencyHeader, RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	})
}

// CORSHandler wraps the router so preflight requests never reach gin
func CORSHandler(allowedOrigins []string, next http.Handler) http.Handler {
	return NewCORS(allowedOrigins).Handler(next)
}
