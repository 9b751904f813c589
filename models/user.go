package models

import "time"

type UserStatus string
type UserRole string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"

	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string     `gorm:"not null" json:"username"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Role      UserRole   `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Status    UserStatus `gorm:"type:VARCHAR(10);default:'active'" json:"status"`
	Products  []Product  `gorm:"foreignKey:UserID" json:"products,omitempty"`
	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Carts     []Cart     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
