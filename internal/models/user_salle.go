package models

import "time"

// UserSalle links a user to a salle. At most one link per (user, salle) pair,
// enforced by the composite unique index so concurrent creates cannot race
// past the service-level check. Links are immutable once created.
type UserSalle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_salles_pair" json:"id_user"`
	SalleID   uint      `gorm:"not null;uniqueIndex:idx_user_salles_pair" json:"id_salle"`
	CreatedAt time.Time `json:"date_creation"`

	CreatorID uint `gorm:"not null;index" json:"admin_creator"`

	User    User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Salle   Salle `gorm:"foreignKey:SalleID;constraint:OnDelete:CASCADE" json:"-"`
	Creator User  `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}
