package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows any origin. debug turns on rs/cors' own logging.
func CORS(debug bool) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		Debug:          debug,
	})
	return c.Handler
}
