package models

import "time"

// User represents the canonical identity entity. PhoneNo is the natural key
// used for login; JWTToken holds the single currently valid session token.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	UserName     string    `gorm:"column:user_name;not null"`
	PhoneNo      string    `gorm:"column:phone_no;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	JWTToken     *string   `gorm:"column:jwt_token"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// HasSession reports whether a token is currently bound to the user.
func (u *User) HasSession() bool {
	return u != nil && u.JWTToken != nil && *u.JWTToken != ""
}
