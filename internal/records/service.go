package records

import (
	"context"

	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"github.com/angelmondragon/healthtrack-backend/pkg/validation"
)

// Schema describes one record kind: its route name and the defaults applied
// before validation. Field constraints live in the model's struct tags.
type Schema[T any] struct {
	Name     string
	Defaults func(*T)
}

// Service validates input and delegates to the owner-scoped repository.
type Service[T any, P Model[T]] struct {
	schema Schema[T]
	repo   *Repository[T, P]
}

// NewService wires a record service for the given schema.
func NewService[T any, P Model[T]](schema Schema[T], repo *Repository[T, P]) *Service[T, P] {
	return &Service[T, P]{schema: schema, repo: repo}
}

// Create validates rec and stores it for ownerID.
func (s *Service[T, P]) Create(ctx context.Context, ownerID uint, rec P) (uint, error) {
	if err := s.prepare(ownerID, rec); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, ownerID, rec)
}

// List returns the owner's rows.
func (s *Service[T, P]) List(ctx context.Context, ownerID uint) ([]T, error) {
	if ownerID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "owner is required")
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update validates rec and overwrites row id.
func (s *Service[T, P]) Update(ctx context.Context, ownerID, id uint, rec P) error {
	if id == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "id is required")
	}
	if err := s.prepare(ownerID, rec); err != nil {
		return err
	}
	return s.repo.Update(ctx, ownerID, id, rec)
}

// Delete removes row id.
func (s *Service[T, P]) Delete(ctx context.Context, ownerID, id uint) error {
	if ownerID == 0 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "owner is required")
	}
	if id == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "id is required")
	}
	return s.repo.Delete(ctx, ownerID, id)
}

// prepare rejects a body naming another owner, then applies defaults and
// validates.
func (s *Service[T, P]) prepare(ownerID uint, rec P) error {
	if ownerID == 0 {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "owner is required")
	}
	if (*T)(rec) == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "body is required")
	}
	if claimed := rec.OwnerID(); claimed != 0 && claimed != ownerID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "user_id does not match the authenticated user")
	}
	if s.schema.Defaults != nil {
		s.schema.Defaults((*T)(rec))
	}
	return validation.Struct(rec)
}
