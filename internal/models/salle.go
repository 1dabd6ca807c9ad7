package models

import "time"

// Salle is a managed room. The creator must be an admin; deleting the creator
// cascades to the salles they created.
type Salle struct {
	ID        uint      `gorm:"primaryKey" json:"id_salle"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	CreatedAt time.Time `json:"date_creation"`

	CreatorID uint `gorm:"not null;index" json:"admin_creator"`
	Creator   User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
}
