package models

import (
	"time"
)

// User is the account model. Email is the identity key; IsAdmin gates every
// management endpoint. IsStaff and IsSuperuser only exist for the bootstrap
// superuser path and are never exposed.
type User struct {
	ID          uint       `gorm:"primaryKey" json:"id_user"`
	Email       string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name        string     `gorm:"size:255" json:"name"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Password    string     `gorm:"not null" json:"-"`
	IsAdmin     bool       `gorm:"default:false" json:"is_admin"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	IsStaff     bool       `gorm:"default:false" json:"-"`
	IsSuperuser bool       `gorm:"default:false" json:"-"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"-"`

	// CreatorID records the admin who created this account. Null for
	// bootstrap superusers; nulled when the creator is deleted.
	CreatorID *uint `gorm:"index" json:"-"`
	Creator   *User `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"-"`
}
