package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role value")
)

type UserService struct {
	db          *gorm.DB
	adminEmails []string
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, adminEmails: parseCSV(cfg.AdminEmails)}
}

// Create registers an identity. The stored role is always RoleUser no matter
// what the payload claims; elevation happens only through UpdateRole.
func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if req.Email == "" {
		return nil, errors.New("email is required")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     string(models.RoleUser),
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Exists reports whether an identity record exists for the email.
func (s *UserService) Exists(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ResolveRole looks up the identity's role by exact email match. A missing
// record resolves to RoleNone, which is distinct from an explicit RoleUser.
// Store failures are returned as errors, never collapsed into RoleNone.
func (s *UserService) ResolveRole(email string) (models.Role, error) {
	for _, admin := range s.adminEmails {
		if admin == email {
			return models.RoleAdmin, nil
		}
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleNone, nil
	}
	if err != nil {
		return models.RoleNone, fmt.Errorf("failed to resolve role: %w", err)
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return models.ParseRole(user.Role), nil
}

// HasAnyRole reports whether the identity holds one of the given roles.
func (s *UserService) HasAnyRole(email string, roles ...models.Role) (bool, error) {
	role, err := s.ResolveRole(email)
	if err != nil {
		return false, err
	}
	return role.In(roles...), nil
}

// UpdateRole patches the single role field. Only enum values are accepted.
func (s *UserService) UpdateRole(id uuid.UUID, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", string(role))
	if result.Error != nil {
		return fmt.Errorf("failed to update role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the identity (soft delete). Applications, reviews and
// payments referencing the email stay behind; nothing cascades.
func (s *UserService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return result.RowsAffected, nil
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
