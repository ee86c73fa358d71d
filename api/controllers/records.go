package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/healthtrack-backend/api/middleware"
	"github.com/angelmondragon/healthtrack-backend/api/responses"
	"github.com/angelmondragon/healthtrack-backend/api/validators"
	"github.com/angelmondragon/healthtrack-backend/internal/records"
	"github.com/angelmondragon/healthtrack-backend/pkg/logger"
	"github.com/angelmondragon/healthtrack-backend/pkg/types"
)

// RecordService is the CRUD surface shared by every health record kind.
type RecordService[T any, P records.Model[T]] interface {
	Create(ctx context.Context, ownerID uint, rec P) (uint, error)
	List(ctx context.Context, ownerID uint) ([]T, error)
	Update(ctx context.Context, ownerID, id uint, rec P) error
	Delete(ctx context.Context, ownerID, id uint) error
}

// RecordCreate stores a new record for the caller and returns its id.
func RecordCreate[T any, P records.Model[T]](svc RecordService[T, P], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec T
		if err := validators.DecodeJSON(r, &rec); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.Create(r.Context(), middleware.UserIDFromContext(r.Context()), P(&rec))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.CreatedID{ID: id})
	}
}

// RecordList returns every record the caller owns. RequireOwner has already
// matched the path user id against the caller.
func RecordList[T any, P records.Model[T]](svc RecordService[T, P], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.List(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// RecordUpdate overwrites the mutable fields of one of the caller's records.
func RecordUpdate[T any, P records.Model[T]](svc RecordService[T, P], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var rec T
		if err := validators.DecodeJSON(r, &rec); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Update(r.Context(), middleware.UserIDFromContext(r.Context()), id, P(&rec)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.UpdatedID{UpdatedID: id})
	}
}

// RecordDelete removes one of the caller's records.
func RecordDelete[T any, P records.Model[T]](svc RecordService[T, P], logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), middleware.UserIDFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, types.DeletedID{DeletedID: id})
	}
}
