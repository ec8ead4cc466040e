package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrScholarshipNotFound = errors.New("scholarship not found")

type ScholarshipService struct {
	db *gorm.DB
}

func NewScholarshipService(db *gorm.DB) *ScholarshipService {
	return &ScholarshipService{db: db}
}

// slotFilter translates the filterQty query parameter into a slot-availability
// predicate. Three disjoint branches: "1" keeps listings with openings, "0"
// keeps closed listings, anything else (including absent) applies no cut.
// Earlier versions computed this value but never applied it to the query;
// here it is wired through to both the paginated list and the count.
func slotFilter(q *gorm.DB, filterQty string) *gorm.DB {
	switch filterQty {
	case "1":
		return q.Where("slots >= ?", 1)
	case "0":
		return q.Where("slots <= ?", 0)
	default:
		return q
	}
}

func (s *ScholarshipService) List() ([]models.Scholarship, error) {
	var scholarships []models.Scholarship
	if err := s.db.Order("post_date DESC").Find(&scholarships).Error; err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}
	return scholarships, nil
}

// ListPage returns the documents at offset page*size through page*size+size-1
// of the post-date-ordered collection, after the slot filter.
func (s *ScholarshipService) ListPage(page, size int, filterQty string) ([]models.Scholarship, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 10
	}

	var scholarships []models.Scholarship
	err := slotFilter(s.db, filterQty).
		Order("post_date DESC").
		Offset(page * size).
		Limit(size).
		Find(&scholarships).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}
	return scholarships, nil
}

// Count is a store-side COUNT under the same slot filter as ListPage, not a
// fetch-then-length pass over the whole collection.
func (s *ScholarshipService) Count(filterQty string) (int64, error) {
	var count int64
	if err := slotFilter(s.db.Model(&models.Scholarship{}), filterQty).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}
	return count, nil
}

func (s *ScholarshipService) GetByID(id uuid.UUID) (*models.Scholarship, error) {
	var scholarship models.Scholarship
	err := s.db.Where("id = ?", id).First(&scholarship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScholarshipNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scholarship: %w", err)
	}
	return &scholarship, nil
}

func (s *ScholarshipService) Create(postedBy string, req *dto.ScholarshipRequest) (*models.Scholarship, error) {
	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	postDate := time.Now()
	if req.PostDate != "" {
		if t, err := time.Parse(time.RFC3339, req.PostDate); err == nil {
			postDate = t
		}
	}

	scholarship := models.Scholarship{
		ID:                  uuid.New(),
		ScholarshipName:     req.ScholarshipName,
		UniversityName:      req.UniversityName,
		UniversityLogo:      req.UniversityLogo,
		UniversityCountry:   req.UniversityCountry,
		UniversityCity:      req.UniversityCity,
		UniversityWorldRank: req.UniversityWorldRank,
		SubjectCategory:     req.SubjectCategory,
		ScholarshipCategory: req.ScholarshipCategory,
		DegreeCategory:      req.DegreeCategory,
		TuitionFee:          req.TuitionFee,
		ApplicationFee:      req.ApplicationFee,
		ServiceCharge:       req.ServiceCharge,
		ApplicationDeadline: deadline,
		PostDate:            postDate,
		PostedBy:            postedBy,
		Slots:               req.ScholarshipQty,
	}

	if err := s.db.Create(&scholarship).Error; err != nil {
		return nil, fmt.Errorf("failed to create scholarship: %w", err)
	}
	return &scholarship, nil
}

// ReplaceFields overwrites the allowlisted columns only. Unknown payload
// fields never reach the store; the allowlist is the schema.
func (s *ScholarshipService) ReplaceFields(id uuid.UUID, req *dto.ScholarshipRequest) (int64, error) {
	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return 0, err
	}

	updates := map[string]interface{}{
		"scholarship_name":      req.ScholarshipName,
		"university_name":       req.UniversityName,
		"university_logo":       req.UniversityLogo,
		"university_country":    req.UniversityCountry,
		"university_city":       req.UniversityCity,
		"university_world_rank": req.UniversityWorldRank,
		"subject_category":      req.SubjectCategory,
		"scholarship_category":  req.ScholarshipCategory,
		"degree_category":       req.DegreeCategory,
		"tuition_fee":           req.TuitionFee,
		"application_fee":       req.ApplicationFee,
		"service_charge":        req.ServiceCharge,
		"application_deadline":  deadline,
		"slots":                 req.ScholarshipQty,
	}

	result := s.db.Model(&models.Scholarship{}).
		Where("id = ?", id).
		Select(models.ScholarshipAllowedFields).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update scholarship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrScholarshipNotFound
	}
	return result.RowsAffected, nil
}

// Delete removes the listing. Applications and reviews that reference it are
// left dangling on purpose; there are no cascades anywhere in the system.
func (s *ScholarshipService) Delete(id uuid.UUID) (int64, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Scholarship{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete scholarship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, ErrScholarshipNotFound
	}
	return result.RowsAffected, nil
}

// Exists is the soft-reference check used by application and review writes.
func (s *ScholarshipService) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Scholarship{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check scholarship: %w", err)
	}
	return count > 0, nil
}

func parseDeadline(s string) (datatypes.Date, error) {
	if s == "" {
		return datatypes.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, errors.New("applicationDeadline must be YYYY-MM-DD")
	}
	return datatypes.Date(t), nil
}
