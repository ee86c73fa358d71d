package middleware

import (
	"net/http"

	"github.com/angelmondragon/healthtrack-backend/api/responses"
	"github.com/angelmondragon/healthtrack-backend/api/validators"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"github.com/angelmondragon/healthtrack-backend/pkg/logger"
)

// RequireOwner rejects requests whose path user id differs from the caller.
// It must run inside Auth.
func RequireOwner(param string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || identity.UserID == 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
				return
			}

			ownerID, err := validators.ParseIDParam(r, param)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			if ownerID != identity.UserID {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "records belong to another user"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
