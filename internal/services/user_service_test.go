package services

import (
	"testing"

	"github.com/arscholarpoint/scholarpoint-server/internal/config"
	"github.com/arscholarpoint/scholarpoint-server/internal/dto"
	"github.com/arscholarpoint/scholarpoint-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	return NewUserService(newTestDB(t), &config.Config{})
}

func TestCreateForcesUserRole(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(&dto.CreateUserRequest{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	role, err := svc.ResolveRole("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(&dto.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.Create(&dto.CreateUserRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestResolveRoleNoneVersusUser(t *testing.T) {
	svc := newUserService(t)

	// no record at all: RoleNone, not an error and not "user"
	role, err := svc.ResolveRole("ghost@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleNone, role)

	_, err = svc.Create(&dto.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	role, err = svc.ResolveRole("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestUpdateRole(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(&dto.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRole(user.ID, models.RoleAgent))
	role, err := svc.ResolveRole("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, role)

	// free-text roles are rejected; the stored value stays a closed enum
	err = svc.UpdateRole(user.ID, models.Role("superadmin"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	ok, err := svc.HasAnyRole("a@x.com", models.RoleAdmin, models.RoleAgent)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.HasAnyRole("a@x.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdminBootstrapFromConfig(t *testing.T) {
	svc := NewUserService(newTestDB(t), &config.Config{AdminEmails: "root@x.com, ops@x.com"})

	role, err := svc.ResolveRole("root@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestDeleteUser(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(&dto.CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	deleted, err := svc.Delete(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	exists, err := svc.Exists("a@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Delete(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
