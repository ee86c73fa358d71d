package users

import (
	"time"

	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID        uint      `json:"id"`
	UserName  string    `json:"username"`
	PhoneNo   string    `json:"phoneno"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	UserName     string
	PhoneNo      string
	PasswordHash string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		UserName:  u.UserName,
		PhoneNo:   u.PhoneNo,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (dto CreateUserDTO) ToModel() *models.User {
	return &models.User{
		UserName:     dto.UserName,
		PhoneNo:      dto.PhoneNo,
		PasswordHash: dto.PasswordHash,
	}
}
