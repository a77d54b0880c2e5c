package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight result.
const corsMaxAge = 300

// CORS returns a middleware answering preflight requests and setting CORS
// headers for the given origins. An empty list allows every origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length", "Accept-Encoding",
			"Cache-Control", "X-Request-Id", "X-Line-Signature",
		},
		ExposedHeaders:       []string{"X-Request-Id"},
		OptionsSuccessStatus: http.StatusNoContent,
		MaxAge:               corsMaxAge,
	})
}
