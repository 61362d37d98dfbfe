package models

import (
	"mestar-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleAdmin    = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Profile Profile    `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Roles   []UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`

	gorm.Model `json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// Profile carries the customer-facing identity attached to a user account.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}

// UserRole grants one role to one user. A user may hold several rows
// (e.g. a barber who is also an admin).
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_user_role,priority:1;not null" json:"userId"`
	Role   string    `gorm:"type:varchar(20);uniqueIndex:idx_user_role,priority:2;not null" json:"role"`
}

func (r *UserRole) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = uuid.New()
	return
}
