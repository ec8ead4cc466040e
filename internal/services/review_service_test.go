package services

import (
	"testing"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture(t *testing.T) (*ReviewService, uuid.UUID) {
	db := newTestDB(t)
	scholarships := NewScholarshipService(db)
	reviews := NewReviewService(db, scholarships)
	ids := seedScholarships(t, scholarships, 2, 2)
	return reviews, ids[0]
}

func TestReviewCreateValidatesScholarship(t *testing.T) {
	reviews, scholarshipID := newReviewFixture(t)

	review, err := reviews.Create("b@x.com", &dto.ReviewRequest{
		ScholarshipID: scholarshipID.String(),
		Rating:        4.5,
		Comment:       "Great process",
	})
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", review.ReviewerEmail)
	assert.False(t, review.ReviewDate.IsZero())

	_, err = reviews.Create("b@x.com", &dto.ReviewRequest{
		ScholarshipID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

func TestReviewListFilters(t *testing.T) {
	reviews, scholarshipID := newReviewFixture(t)

	for _, email := range []string{"b@x.com", "c@x.com"} {
		_, err := reviews.Create(email, &dto.ReviewRequest{
			ScholarshipID: scholarshipID.String(),
			Rating:        5,
		})
		require.NoError(t, err)
	}

	all, err := reviews.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byScholarship, err := reviews.List(&scholarshipID)
	require.NoError(t, err)
	assert.Len(t, byScholarship, 2)

	other := uuid.New()
	none, err := reviews.List(&other)
	require.NoError(t, err)
	assert.Empty(t, none)

	mine, err := reviews.ListByReviewer("b@x.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestReviewReplaceAndDeleteOwnership(t *testing.T) {
	reviews, scholarshipID := newReviewFixture(t)

	review, err := reviews.Create("b@x.com", &dto.ReviewRequest{
		ScholarshipID: scholarshipID.String(),
		Rating:        3,
		Comment:       "ok",
	})
	require.NoError(t, err)

	_, err = reviews.ReplaceFields(review.ID, "c@x.com", &dto.ReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	matched, err := reviews.ReplaceFields(review.ID, "b@x.com", &dto.ReviewRequest{
		Rating:  4,
		Comment: "better on reflection",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := reviews.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)
	// reviewer identity is outside the allowlist
	assert.Equal(t, "b@x.com", got.ReviewerEmail)
	assert.Equal(t, review.ScholarshipID, got.ScholarshipID)

	_, err = reviews.Delete(review.ID, "c@x.com", false)
	assert.ErrorIs(t, err, ErrNotReviewOwner)

	deleted, err := reviews.Delete(review.ID, "b@x.com", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
