package services

import (
	"errors"
	"fmt"

	"github.com/zineb-24/ReportingBackend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDuplicateLink = errors.New("this user is already linked to this salle")
	ErrLinkNotFound  = errors.New("link not found")
)

type LinkService struct {
	db *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

// Create links a user to a salle. The composite unique index backs up the
// existence check under concurrency. Links are immutable; there is no update.
func (s *LinkService) Create(userID, salleID uint, creator *models.User) (*models.UserSalle, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var salle models.Salle
	if err := s.db.First(&salle, salleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalleNotFound
		}
		return nil, fmt.Errorf("failed to get salle: %w", err)
	}

	var existing models.UserSalle
	if err := s.db.Where("user_id = ? AND salle_id = ?", userID, salleID).
		First(&existing).Error; err == nil {
		return nil, ErrDuplicateLink
	}

	link := models.UserSalle{
		UserID:    userID,
		SalleID:   salleID,
		CreatorID: creator.ID,
	}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLink
		}
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	link.User = user
	link.Salle = salle
	link.Creator = *creator
	return &link, nil
}

// List returns links with their referenced rows preloaded, optionally
// filtered by user and/or salle (AND semantics). A zero filter means absent.
func (s *LinkService) List(userID, salleID uint) ([]models.UserSalle, error) {
	query := s.db.Preload("User").Preload("Salle").Preload("Creator").Order("id")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if salleID != 0 {
		query = query.Where("salle_id = ?", salleID)
	}

	var links []models.UserSalle
	if err := query.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

func (s *LinkService) Get(id uint) (*models.UserSalle, error) {
	var link models.UserSalle
	err := s.db.Preload("User").Preload("Salle").Preload("Creator").First(&link, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return &link, nil
}

func (s *LinkService) Delete(id uint) error {
	result := s.db.Delete(&models.UserSalle{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// SallesForUser returns the salles joined through links for one user. An
// unknown user id yields an empty list, not an error.
func (s *LinkService) SallesForUser(userID uint) ([]models.Salle, error) {
	var salles []models.Salle
	err := s.db.
		Joins("JOIN user_salles ON user_salles.salle_id = salles.id").
		Where("user_salles.user_id = ?", userID).
		Order("salles.id").
		Find(&salles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list salles for user: %w", err)
	}
	return salles, nil
}

// UsersForSalle is the symmetric join.
func (s *LinkService) UsersForSalle(salleID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN user_salles ON user_salles.user_id = users.id").
		Where("user_salles.salle_id = ?", salleID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users for salle: %w", err)
	}
	return users, nil
}
