package dto

import (
	"time"

	"github.com/zineb-24/ReportingBackend/internal/models"
)

type CreateLinkRequest struct {
	IDUser  uint `json:"id_user"`
	IDSalle uint `json:"id_salle"`
}

type UserRef struct {
	IDUser uint   `json:"id_user"`
	Name   string `json:"name"`
}

type SalleRef struct {
	IDSalle uint   `json:"id_salle"`
	Name    string `json:"name"`
}

// LinkDetail is the read shape for links: referenced rows are rendered as
// id/name pairs rather than bare ids.
type LinkDetail struct {
	ID           uint      `json:"id"`
	IDUser       UserRef   `json:"id_user"`
	IDSalle      SalleRef  `json:"id_salle"`
	AdminCreator UserRef   `json:"admin_creator"`
	DateCreation time.Time `json:"date_creation"`
}

// NewLinkDetail renders a link whose User, Salle and Creator are preloaded.
func NewLinkDetail(link *models.UserSalle) LinkDetail {
	return LinkDetail{
		ID:           link.ID,
		IDUser:       UserRef{IDUser: link.User.ID, Name: link.User.Name},
		IDSalle:      SalleRef{IDSalle: link.Salle.ID, Name: link.Salle.Name},
		AdminCreator: UserRef{IDUser: link.Creator.ID, Name: link.Creator.Name},
		DateCreation: link.CreatedAt,
	}
}
