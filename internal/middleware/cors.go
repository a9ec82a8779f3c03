package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browser clients on any origin open a game socket.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
