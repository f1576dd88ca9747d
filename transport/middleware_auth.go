package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/wpangestu/contacts-api/application/user"
	"github.com/wpangestu/contacts-api/constant"
	utilsContext "github.com/wpangestu/contacts-api/utils/context"
	"github.com/wpangestu/contacts-api/utils/errors"
)

// AuthMiddleware resolves the Authorization header to a user via UserApp and
// attaches it to the request context. Registration and login stay public.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// the header carries the opaque token verbatim, no scheme prefix
			token := r.Header.Get("Authorization")
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			authUser, err := userApp.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := utilsContext.WithUser(r.Context(), authUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if method == http.MethodPost && (path == "/api/users" || path == "/api/users/login") {
		return true
	}

	return false
}
