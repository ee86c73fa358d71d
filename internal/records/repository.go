package records

import (
	"context"
	"time"

	"github.com/angelmondragon/healthtrack-backend/internal/repo"
	"gorm.io/gorm"
)

// Record is implemented by every owner-scoped health record model.
type Record interface {
	GetID() uint
	OwnerID() uint
	Bind(ownerID uint)
}

// Model ties a record struct to the pointer type carrying its methods.
type Model[T any] interface {
	*T
	Record
}

// Repository persists one record type. Every query is scoped to the owner,
// so a row belonging to someone else is indistinguishable from a missing one.
type Repository[T any, P Model[T]] struct {
	repo.Base
	name string
}

// NewRepository constructs a repository for the record type T.
func NewRepository[T any, P Model[T]](db *gorm.DB, timeout time.Duration, name string) *Repository[T, P] {
	return &Repository[T, P]{Base: repo.NewBase(db, timeout), name: name}
}

// Create inserts rec under ownerID and returns the assigned id.
func (r *Repository[T, P]) Create(ctx context.Context, ownerID uint, rec P) (uint, error) {
	rec.Bind(ownerID)
	err := r.Run(ctx, "create "+r.name, func(db *gorm.DB) error {
		return db.Create(rec).Error
	})
	if err != nil {
		return 0, err
	}
	return rec.GetID(), nil
}

// ListByOwner returns every row owned by ownerID in id order.
func (r *Repository[T, P]) ListByOwner(ctx context.Context, ownerID uint) ([]T, error) {
	rows := make([]T, 0)
	err := r.Run(ctx, "list "+r.name, func(db *gorm.DB) error {
		return db.Where("user_id = ?", ownerID).Order("id ASC").Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update overwrites every mutable column of row id. The owner never changes.
func (r *Repository[T, P]) Update(ctx context.Context, ownerID, id uint, rec P) error {
	rec.Bind(ownerID)
	return r.Run(ctx, "update "+r.name, func(db *gorm.DB) error {
		res := db.Model(P(new(T))).
			Where("id = ? AND user_id = ?", id, ownerID).
			Select("*").
			Omit("id", "user_id").
			Updates(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete removes row id when it belongs to ownerID.
func (r *Repository[T, P]) Delete(ctx context.Context, ownerID, id uint) error {
	return r.Run(ctx, "delete "+r.name, func(db *gorm.DB) error {
		res := db.Where("id = ? AND user_id = ?", id, ownerID).Delete(P(new(T)))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
