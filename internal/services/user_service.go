package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zineb-24/ReportingBackend/internal/dto"
	"github.com/zineb-24/ReportingBackend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrMissingFields = errors.New("email and password are required")
	ErrUserNotFound  = errors.New("user not found")
	ErrSelfDelete    = errors.New("you cannot delete your own account")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Create stores a new account with a hashed credential, recording the admin
// who created it. The unique index on email is the real duplicate guard; the
// lookup here only produces the friendlier error.
func (s *UserService) Create(req *dto.CreateUserRequest, creator *models.User) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Password:  string(hash),
		IsAdmin:   req.IsAdmin,
		IsActive:  true,
		CreatorID: &creator.ID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// CreateSuperuser is the bootstrap path: no creator, all flags set. Used at
// startup before any admin exists.
func (s *UserService) CreateSuperuser(email, name, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Email:       email,
		Name:        name,
		Password:    string(hash),
		IsAdmin:     true,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create superuser: %w", err)
	}

	return &user, nil
}

// List returns users filtered by role: "admin", "user", or everything for any
// other value.
func (s *UserService) List(role string) ([]models.User, error) {
	query := s.db.Order("id")
	switch strings.ToLower(role) {
	case "admin":
		query = query.Where("is_admin = ?", true)
	case "user":
		query = query.Where("is_admin = ?", false)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Update applies a partial field set. A present password is re-hashed.
func (s *UserService) Update(id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.IsAdmin != nil {
		updates["is_admin"] = *req.IsAdmin
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.Get(id)
}

// Delete removes an account and everything hanging off it: session token,
// links, salles they created (creator deletion cascades to salles), and the
// creator reference on accounts they created is nulled. Admins cannot delete
// themselves.
func (s *UserService) Delete(id uint, requester *models.User) error {
	if id == requester.ID {
		return ErrSelfDelete
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR creator_id = ?", id, id).Delete(&models.UserSalle{}).Error; err != nil {
			return err
		}

		// Salles created by this user cascade away, links to them first.
		var salleIDs []uint
		if err := tx.Model(&models.Salle{}).Where("creator_id = ?", id).Pluck("id", &salleIDs).Error; err != nil {
			return err
		}
		if len(salleIDs) > 0 {
			if err := tx.Where("salle_id IN ?", salleIDs).Delete(&models.UserSalle{}).Error; err != nil {
				return err
			}
			if err := tx.Where("creator_id = ?", id).Delete(&models.Salle{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.User{}).Where("creator_id = ?", id).
			Update("creator_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}

// CountByRole returns the dashboard stats.
func (s *UserService) CountByRole() (dto.DashboardStats, error) {
	var stats dto.DashboardStats
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&stats.AdminUsers).Error; err != nil {
		return stats, fmt.Errorf("failed to count admins: %w", err)
	}
	stats.RegularUsers = stats.TotalUsers - stats.AdminUsers
	return stats, nil
}
