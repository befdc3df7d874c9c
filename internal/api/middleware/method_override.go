package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideParam is the query or form field naming the real method
const MethodOverrideParam = "_method"

var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride dispatches a POST carrying _method as the named method.
// It wraps the router since gin picks the route before any middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(MethodOverrideParam)
			if method == "" {
				method = r.PostFormValue(MethodOverrideParam)
			}
			method = strings.ToUpper(strings.TrimSpace(method))
			if overridable[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
