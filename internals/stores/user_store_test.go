package stores

import (
	"testing"

	"github.com/Jezzej/craftique/internals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_FindByEmail_MissReturnsNil(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	user, err := s.FindByEmail("missing@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserStore_FindByID_MissReturnsNotFound(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	_, err := s.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_CreateAndFind(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	user := models.User{Name: "A", Email: "a@x.com", Password: "hash"}
	require.NoError(t, s.Create(&user))
	require.NotZero(t, user.ID)

	byEmail, err := s.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.False(t, byEmail.IsVerified, "new users start unverified")

	byID, err := s.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserStore_DuplicateEmailRejected(t *testing.T) {
	s := NewUserStore(newTestDB(t))

	require.NoError(t, s.Create(&models.User{Name: "A", Email: "a@x.com", Password: "h"}))
	err := s.Create(&models.User{Name: "B", Email: "a@x.com", Password: "h"})
	assert.Error(t, err)
}

func TestUserStore_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	s := NewUserStore(db)
	user := seedUser(t, db, "a@x.com")

	require.NoError(t, s.UpdatePassword(user.ID, "newhash"))

	updated, err := s.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newhash", updated.Password)

	assert.ErrorIs(t, s.UpdatePassword(9999, "newhash"), ErrNotFound)
}

func TestUserStore_MarkVerified(t *testing.T) {
	db := newTestDB(t)
	s := NewUserStore(db)
	user := seedUser(t, db, "a@x.com")

	verified, err := s.MarkVerified(user.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = s.MarkVerified(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_UpdateProfile_IgnoresPassword(t *testing.T) {
	db := newTestDB(t)
	s := NewUserStore(db)
	user := seedUser(t, db, "a@x.com")
	originalHash := user.Password

	updated, err := s.UpdateProfile(user.ID, map[string]interface{}{
		"name":     "Renamed",
		"password": "sneaky",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, originalHash, updated.Password)
}

func TestUser_SanitizeStripsSecrets(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@x.com")

	sanitized := user.Sanitize()
	assert.Equal(t, user.ID, sanitized.ID)
	assert.Equal(t, user.Email, sanitized.Email)
	// SanitizedUser has no password field at all; nothing further to strip
}
