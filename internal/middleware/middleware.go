package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Wrap layers mws around h. Each middleware wraps the result of the
// previous one, so the last of mws sees the request first.
func Wrap(h http.Handler, mws ...Middleware) http.Handler {
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}
