package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("not the owner of this review")
)

type ReviewService struct {
	db           *gorm.DB
	scholarships *ScholarshipService
}

func NewReviewService(db *gorm.DB, scholarships *ScholarshipService) *ReviewService {
	return &ReviewService{db: db, scholarships: scholarships}
}

// List returns all reviews, or only those for one scholarship when
// scholarshipID is non-nil.
func (s *ReviewService) List(scholarshipID *uuid.UUID) ([]models.Review, error) {
	q := s.db.Order("review_date DESC")
	if scholarshipID != nil {
		q = q.Where("scholarship_id = ?", *scholarshipID)
	}

	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByReviewer(email string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("reviewer_email = ?", email).Order("review_date DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) GetByID(id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("id = ?", id).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

// Create stores a review for the verified caller. The scholarship must exist
// at write time (soft reference, checked here).
func (s *ReviewService) Create(reviewerEmail string, req *dto.ReviewRequest) (*models.Review, error) {
	scholarshipID, err := uuid.Parse(req.ScholarshipID)
	if err != nil {
		return nil, errors.New("invalid scholarship id")
	}

	exists, err := s.scholarships.Exists(scholarshipID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrScholarshipNotFound
	}

	reviewDate := time.Now()
	if req.ReviewDate != "" {
		if t, err := time.Parse(time.RFC3339, req.ReviewDate); err == nil {
			reviewDate = t
		}
	}

	review := models.Review{
		ID:             uuid.New(),
		ScholarshipID:  scholarshipID,
		UniversityName: req.UniversityName,
		ReviewerEmail:  reviewerEmail,
		ReviewerName:   req.ReviewerName,
		ReviewerImage:  req.ReviewerImage,
		Rating:         req.Rating,
		Comment:        req.Comment,
		ReviewDate:     reviewDate,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

// ReplaceFields overwrites the owner-editable allowlist (rating, comment,
// review date). Only the owner may replace.
func (s *ReviewService) ReplaceFields(id uuid.UUID, callerEmail string, req *dto.ReviewRequest) (int64, error) {
	review, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	if review.ReviewerEmail != callerEmail {
		return 0, ErrNotReviewOwner
	}

	reviewDate := review.ReviewDate
	if req.ReviewDate != "" {
		if t, err := time.Parse(time.RFC3339, req.ReviewDate); err == nil {
			reviewDate = t
		}
	}

	result := s.db.Model(&models.Review{}).
		Where("id = ?", id).
		Select(models.ReviewAllowedFields).
		Updates(map[string]interface{}{
			"rating":      req.Rating,
			"comment":     req.Comment,
			"review_date": reviewDate,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update review: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *ReviewService) Delete(id uuid.UUID, callerEmail string, privileged bool) (int64, error) {
	review, err := s.GetByID(id)
	if err != nil {
		return 0, err
	}
	if !privileged && review.ReviewerEmail != callerEmail {
		return 0, ErrNotReviewOwner
	}

	result := s.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete review: %w", result.Error)
	}
	return result.RowsAffected, nil
}
