package services

import (
	"testing"

	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *ScholarshipService, uuid.UUID) {
	db := newTestDB(t)
	scholarships := NewScholarshipService(db)
	applications := NewApplicationService(db, scholarships)
	ids := seedScholarships(t, scholarships, 1, 1)
	return applications, scholarships, ids[0]
}

func TestApplicationCreateValidatesScholarship(t *testing.T) {
	applications, _, scholarshipID := newApplicationFixture(t)

	app, err := applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: scholarshipID.String(),
		ApplicantName: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", app.Status)
	assert.Equal(t, "b@x.com", app.ApplicantEmail)
	// denormalized listing fields come from the store, not the payload
	assert.Equal(t, "University 00", app.UniversityName)

	_, err = applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrScholarshipNotFound)

	_, err = applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: "not-a-uuid",
	})
	assert.Error(t, err)
}

func TestApplicationReplaceOwnerOnly(t *testing.T) {
	applications, _, scholarshipID := newApplicationFixture(t)

	app, err := applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: scholarshipID.String(),
		ApplicantName: "B",
		Phone:         "111",
	})
	require.NoError(t, err)

	_, err = applications.ReplaceFields(app.ID, "c@x.com", &dto.ApplicationRequest{
		ApplicantName: "Hijacked",
	})
	assert.ErrorIs(t, err, ErrNotApplicationOwner)

	matched, err := applications.ReplaceFields(app.ID, "b@x.com", &dto.ApplicationRequest{
		ApplicantName: "B Updated",
		Phone:         "222",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := applications.GetByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "B Updated", got.ApplicantName)
	assert.Equal(t, "222", got.Phone)
	// status and feedback are outside the applicant allowlist
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, app.ApplicantEmail, got.ApplicantEmail)
}

func TestApplicationPatchStatus(t *testing.T) {
	applications, _, scholarshipID := newApplicationFixture(t)

	app, err := applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: scholarshipID.String(),
		ApplicantName: "B",
	})
	require.NoError(t, err)

	// the status set has never been closed: arbitrary strings pass
	matched, err := applications.PatchStatus(app.ID, &dto.ApplicationStatusRequest{
		Status:   "accepted",
		Feedback: "Congratulations",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := applications.GetByID(app.ID)
	require.NoError(t, err)
	assert.Equal(t, "accepted", got.Status)
	assert.Equal(t, "Congratulations", got.Feedback)
	// everything else is untouched
	assert.Equal(t, "B", got.ApplicantName)
	assert.Equal(t, app.ScholarshipID, got.ScholarshipID)

	_, err = applications.PatchStatus(app.ID, &dto.ApplicationStatusRequest{})
	assert.Error(t, err)

	_, err = applications.PatchStatus(uuid.New(), &dto.ApplicationStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestApplicationDelete(t *testing.T) {
	applications, _, scholarshipID := newApplicationFixture(t)

	app, err := applications.Create("b@x.com", &dto.ApplicationRequest{
		ScholarshipID: scholarshipID.String(),
	})
	require.NoError(t, err)

	_, err = applications.Delete(app.ID, "c@x.com", false)
	assert.ErrorIs(t, err, ErrNotApplicationOwner)

	// privileged callers may cancel anyone's application
	deleted, err := applications.Delete(app.ID, "c@x.com", true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = applications.GetByID(app.ID)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
