package middleware

import (
	"net/http"
	"strings"

	"github.com/doodlesbykumbi/artrights/pkg/service"
)

// UserHeader names the acting user of a request. Authentication happens in
// front of this service; the header is trusted as given.
const UserHeader = "X-Artrights-User"

// Actor copies UserHeader into the request context so services can stamp
// created_by and audit records.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := strings.TrimSpace(r.Header.Get(UserHeader)); user != "" {
			r = r.WithContext(service.WithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
