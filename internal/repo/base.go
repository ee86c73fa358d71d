package repo

import (
	"context"
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/db"
	"gorm.io/gorm"
)

// Base provides a shared foundation for domain repositories.
type Base struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewBase constructs a Base repository backed by the provided GORM
// connection. A positive timeout bounds every call made through Run.
func NewBase(db *gorm.DB, timeout time.Duration) Base {
	return Base{db: db, timeout: timeout}
}

// Run executes fn under the storage timeout and classifies whatever error it
// returns. op names the operation for logs.
func (b Base) Run(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	if err := fn(b.db.WithContext(ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return db.Classify(ctxErr, op)
		}
		return db.Classify(err, op)
	}
	return nil
}
