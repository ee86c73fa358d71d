package users

import (
	"context"
	"time"

	"github.com/angelmondragon/healthtrack-backend/internal/repo"
	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository exposes user-related persistence operations. Every call runs
// under the storage timeout and returns classified errors.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB, timeout time.Duration) *Repository {
	return &Repository{Base: repo.NewBase(db, timeout)}
}

// TokenMinter issues the first session token for a freshly inserted user.
type TokenMinter func(user *models.User) (string, error)

// CreateWithToken inserts the user and stores the token produced by mint in
// one transaction, so a user never exists without its first session.
func (r *Repository) CreateWithToken(ctx context.Context, dto CreateUserDTO, mint TokenMinter) (*models.User, error) {
	user := dto.ToModel()
	err := r.Run(ctx, "create user", func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			token, err := mint(user)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "issue token")
			}
			if err := tx.Model(user).UpdateColumn("jwt_token", token).Error; err != nil {
				return err
			}
			user.JWTToken = &token
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ExistsByPhone reports whether a user is registered under phoneNo.
func (r *Repository) ExistsByPhone(ctx context.Context, phoneNo string) (bool, error) {
	var count int64
	err := r.Run(ctx, "count users by phone", func(db *gorm.DB) error {
		return db.Model(&models.User{}).Where("phone_no = ?", phoneNo).Count(&count).Error
	})
	return count > 0, err
}

// FindByPhone retrieves the user matching the provided phone number.
func (r *Repository) FindByPhone(ctx context.Context, phoneNo string) (*models.User, error) {
	var user models.User
	err := r.Run(ctx, "find user by phone", func(db *gorm.DB) error {
		return db.Where("phone_no = ?", phoneNo).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by id.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.Run(ctx, "find user by id", func(db *gorm.DB) error {
		return db.First(&user, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateToken overwrites the stored session token.
func (r *Repository) UpdateToken(ctx context.Context, id uint, token string) error {
	return r.setToken(ctx, "update user token", id, &token)
}

// ClearToken removes the stored session token. Clearing an already empty
// token succeeds.
func (r *Repository) ClearToken(ctx context.Context, id uint) error {
	return r.setToken(ctx, "clear user token", id, nil)
}

func (r *Repository) setToken(ctx context.Context, op string, id uint, token *string) error {
	return r.Run(ctx, op, func(db *gorm.DB) error {
		res := db.Model(&models.User{}).
			Where("id = ?", id).
			UpdateColumn("jwt_token", token)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Delete removes the user; dependent health records cascade.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	return r.Run(ctx, "delete user", func(db *gorm.DB) error {
		res := db.Where("id = ?", id).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
