package services

import (
	"errors"
	"fmt"

	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSalleNotFound = errors.New("salle not found")
	ErrSalleName     = errors.New("name is required")
)

type SalleService struct {
	db *gorm.DB
}

func NewSalleService(db *gorm.DB) *SalleService {
	return &SalleService{db: db}
}

// Create stores a new salle. The admin check happened at the gate; the
// creator recorded here is therefore always an admin.
func (s *SalleService) Create(req *dto.CreateSalleRequest, creator *models.User) (*models.Salle, error) {
	if req.Name == "" {
		return nil, ErrSalleName
	}

	salle := models.Salle{
		Name:      req.Name,
		Phone:     req.Phone,
		CreatorID: creator.ID,
	}

	if err := s.db.Create(&salle).Error; err != nil {
		return nil, fmt.Errorf("failed to create salle: %w", err)
	}

	return &salle, nil
}

func (s *SalleService) List() ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.db.Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to list salles: %w", err)
	}
	return salles, nil
}

func (s *SalleService) Get(id uint) (*models.Salle, error) {
	var salle models.Salle
	if err := s.db.First(&salle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalleNotFound
		}
		return nil, fmt.Errorf("failed to get salle: %w", err)
	}
	return &salle, nil
}

func (s *SalleService) Update(id uint, req *dto.UpdateSalleRequest) (*models.Salle, error) {
	salle, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrSalleName
		}
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}

	if len(updates) == 0 {
		return salle, nil
	}

	if err := s.db.Model(salle).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update salle: %w", err)
	}

	return s.Get(id)
}

// Delete removes a salle and its links.
func (s *SalleService) Delete(id uint) error {
	var salle models.Salle
	if err := s.db.First(&salle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSalleNotFound
		}
		return fmt.Errorf("failed to get salle: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salle_id = ?", id).Delete(&models.UserSalle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&salle).Error
	})
}
