package services

import (
	"errors"
	"fmt"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotApplicationOwner = errors.New("not the owner of this application")
)

type ApplicationService struct {
	db           *gorm.DB
	scholarships *ScholarshipService
}

func NewApplicationService(db *gorm.DB, scholarships *ScholarshipService) *ApplicationService {
	return &ApplicationService{db: db, scholarships: scholarships}
}

// Create files an application for the verified caller. The scholarship
// reference is soft but must exist at write time; the denormalized listing
// fields are copied in here, not trusted from the payload.
func (s *ApplicationService) Create(applicantEmail string, req *dto.ApplicationRequest) (*models.Application, error) {
	scholarshipID, err := uuid.Parse(req.ScholarshipID)
	if err != nil {
		return nil, errors.New("invalid scholarship id")
	}

	scholarship, err := s.scholarships.GetByID(scholarshipID)
	if err != nil {
		return nil, err
	}

	application := models.Application{
		ID:                  uuid.New(),
		ScholarshipID:       scholarship.ID,
		ApplicantEmail:      applicantEmail,
		ApplicantName:       req.ApplicantName,
		Phone:               req.Phone,
		Photo:               req.Photo,
		Address:             req.Address,
		Gender:              req.Gender,
		ApplyingDegree:      req.ApplyingDegree,
		SSCResult:           req.SSCResult,
		HSCResult:           req.HSCResult,
		StudyGap:            req.StudyGap,
		UniversityName:      scholarship.UniversityName,
		ScholarshipCategory: scholarship.ScholarshipCategory,
		SubjectCategory:     scholarship.SubjectCategory,
		Status:              models.ApplicationPending,
	}

	if err := s.db.Create(&application).Error; err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &application, nil
}

func (s *ApplicationService) ListAll() ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

func (s *ApplicationService) ListByEmail(email string) ([]models.Application, error) {
	var applications []models.Application
	if err := s.db.Where("applicant_email = ?", email).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

func (s *ApplicationService) GetByID(id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := s.db.Where("id = ?", id).First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &application, nil
}

// ReplaceFields overwrites the applicant-editable allowlist. Only the owner
// may replace; status and feedback are not in the allowlist and survive any
// replace untouched.
func (s *ApplicationService) ReplaceFields(id uuid.UUID, callerEmail string, req *dto.ApplicationRequest) (int64, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	if application.ApplicantEmail != callerEmail {
		return 0, ErrNotApplicationOwner
	}

	updates := map[string]interface{}{
		"applicant_name":  req.ApplicantName,
		"phone":           req.Phone,
		"photo":           req.Photo,
		"address":         req.Address,
		"gender":          req.Gender,
		"applying_degree": req.ApplyingDegree,
		"ssc_result":      req.SSCResult,
		"hsc_result":      req.HSCResult,
		"study_gap":       req.StudyGap,
	}

	result := s.db.Model(&models.Application{}).
		Where("id = ?", id).
		Select(models.ApplicationAllowedFields).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update application: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// PatchStatus is the privileged single-field update. Status strings are
// caller-supplied; the set has never been closed and stays open.
func (s *ApplicationService) PatchStatus(id uuid.UUID, req *dto.ApplicationStatusRequest) (int64, error) {
	if req.Status == "" {
		return 0, errors.New("new_applicationStatus is required")
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.Feedback != "" {
		updates["feedback"] = req.Feedback
	}

	result := s.db.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to patch application: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrApplicationNotFound
	}
	return result.RowsAffected, nil
}

// Delete cancels an application. Owners may cancel their own; privileged
// callers may cancel any.
func (s *ApplicationService) Delete(id uuid.UUID, callerEmail string, privileged bool) (int64, error) {
	application, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	if !privileged && application.ApplicantEmail != callerEmail {
		return 0, ErrNotApplicationOwner
	}

	result := s.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete application: %w", result.Error)
	}
	return result.RowsAffected, nil
}
