package models

import "time"

// AuthToken is the opaque session token, one persistent row per user. Login
// reuses the existing key when present; deleting the row revokes the session.
type AuthToken struct {
	Key       string    `gorm:"size:40;primaryKey" json:"key"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
