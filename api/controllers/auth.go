package controllers

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/healthtrack-backend/api/middleware"
	"github.com/angelmondragon/healthtrack-backend/api/responses"
	"github.com/angelmondragon/healthtrack-backend/api/validators"
	"github.com/angelmondragon/healthtrack-backend/internal/auth"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"github.com/angelmondragon/healthtrack-backend/pkg/logger"
	"github.com/angelmondragon/healthtrack-backend/pkg/types"
)

// TokenHeader carries the token checked by the tokenIsValid endpoint.
const TokenHeader = "x-auth-token"

// AuthSignup registers a new user and returns the first token.
func AuthSignup(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.SignupRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Signup(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, asBadRequest(err, pkgerrors.CodeConflict))
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, asBadRequest(err, pkgerrors.CodeNotFound))
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthTokenIsValid answers a bare true or false for the token in the
// x-auth-token header. Only storage failures produce an error response.
func AuthTokenIsValid(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(TokenHeader))
		if token == "" {
			responses.WriteBare(w, false)
			return
		}

		ok, err := svc.TokenCheck(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteBare(w, ok)
	}
}

// AuthProfile returns the authenticated user and the token presented.
func AuthProfile(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.IdentityFromContext(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		result, err := svc.Profile(r.Context(), identity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout revokes the caller's token.
func AuthLogout(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.Status{Status: "logged_out"})
	}
}

// AuthDeleteAccount removes the caller and every record they own.
func AuthDeleteAccount(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		if err := svc.DeleteAccount(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.DeletedID{DeletedID: userID})
	}
}

// asBadRequest keeps the error code but reports 400, which is what mobile
// clients of the signup and login routes branch on.
func asBadRequest(err error, code pkgerrors.Code) error {
	if typed := pkgerrors.As(err); typed != nil && typed.Code() == code {
		return typed.WithStatus(http.StatusBadRequest)
	}
	return err
}
