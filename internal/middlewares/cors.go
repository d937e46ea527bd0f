package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"
)

// CorsMiddleware allows the configured origins with credentials, since the
// session cookie is sent cross-site (SameSite=None).
func CorsMiddleware(next http.Handler) http.Handler {
	origins := []string{"*"}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
	})
	return c.Handler(next)
}
