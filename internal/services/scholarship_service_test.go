package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedScholarships(t *testing.T, svc *ScholarshipService, total, withSlots int) []uuid.UUID {
	t.Helper()
	ids := make([]uuid.UUID, 0, total)
	for i := 0; i < total; i++ {
		slots := 0
		if i < withSlots {
			slots = 3
		}
		s, err := svc.Create("agent@scholarpoint.test", &dto.ScholarshipRequest{
			ScholarshipName:     fmt.Sprintf("Scholarship %02d", i),
			UniversityName:      fmt.Sprintf("University %02d", i),
			UniversityCountry:   "USA",
			SubjectCategory:     "Engineering",
			ScholarshipCategory: "Full fund",
			DegreeCategory:      "Masters",
			ApplicationFee:      50,
			ApplicationDeadline: "2026-12-31",
			PostDate:            time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
			ScholarshipQty:      slots,
		})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	return ids
}

func TestListPageOffsets(t *testing.T) {
	svc := NewScholarshipService(newTestDB(t))
	seedScholarships(t, svc, 7, 7)

	// post_date DESC: page 1 of size 3 holds items at offsets 3..5
	page, err := svc.ListPage(1, 3, "")
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "Scholarship 03", page[0].ScholarshipName)
	assert.Equal(t, "Scholarship 01", page[2].ScholarshipName)

	// last partial page
	page, err = svc.ListPage(2, 3, "")
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Scholarship 00", page[0].ScholarshipName)
}

func TestSlotFilterBranches(t *testing.T) {
	svc := NewScholarshipService(newTestDB(t))
	seedScholarships(t, svc, 5, 2) // 2 open, 3 closed

	cases := []struct {
		filterQty string
		want      int64
	}{
		{"", 5},      // absent: no filter
		{"1", 2},     // has openings
		{"0", 3},     // closed
		{"weird", 5}, // unrecognized: no filter
	}
	for _, tc := range cases {
		count, err := svc.Count(tc.filterQty)
		require.NoError(t, err)
		assert.Equal(t, tc.want, count, "filterQty=%q", tc.filterQty)

		list, err := svc.ListPage(0, 100, tc.filterQty)
		require.NoError(t, err)
		assert.Len(t, list, int(tc.want), "filterQty=%q", tc.filterQty)
	}
}

func TestGetByIDIdempotent(t *testing.T) {
	svc := NewScholarshipService(newTestDB(t))
	ids := seedScholarships(t, svc, 1, 1)

	first, err := svc.GetByID(ids[0])
	require.NoError(t, err)
	second, err := svc.GetByID(ids[0])
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

func TestReplaceFieldsAllowlist(t *testing.T) {
	svc := NewScholarshipService(newTestDB(t))
	ids := seedScholarships(t, svc, 1, 1)

	before, err := svc.GetByID(ids[0])
	require.NoError(t, err)

	matched, err := svc.ReplaceFields(ids[0], &dto.ScholarshipRequest{
		ScholarshipName:     "Renamed",
		UniversityName:      "New University",
		UniversityCountry:   "Canada",
		SubjectCategory:     "Science",
		ScholarshipCategory: "Partial fund",
		DegreeCategory:      "PhD",
		TuitionFee:          12000,
		ApplicationFee:      75,
		ApplicationDeadline: "2027-06-30",
		ScholarshipQty:      9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	after, err := svc.GetByID(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Renamed", after.ScholarshipName)
	assert.Equal(t, 9, after.Slots)
	// posted_by is outside the allowlist and must survive any replace
	assert.Equal(t, before.PostedBy, after.PostedBy)
	assert.Equal(t, before.ID, after.ID)

	_, err = svc.ReplaceFields(uuid.New(), &dto.ScholarshipRequest{ApplicationDeadline: "2027-06-30"})
	assert.ErrorIs(t, err, ErrScholarshipNotFound)
}

func TestDeleteLeavesNoCascade(t *testing.T) {
	db := newTestDB(t)
	scholarships := NewScholarshipService(db)
	applications := NewApplicationService(db, scholarships)
	ids := seedScholarships(t, scholarships, 1, 1)

	_, err := applications.Create("student@scholarpoint.test", &dto.ApplicationRequest{
		ScholarshipID: ids[0].String(),
		ApplicantName: "Student",
	})
	require.NoError(t, err)

	deleted, err := scholarships.Delete(ids[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// the application dangles: soft references, no cascades
	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
