package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns middleware allowing browser front-ends served from the given
// origins to call the task API. An empty list allows every origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler
}
