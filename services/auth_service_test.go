package services

import (
	"testing"

	"stayfinder-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignUpAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	profile, token, err := svc.SignUp("Sarah@Example.com", "secret1", " Sarah ", "Chen")
	require.NoError(t, err)
	assert.Equal(t, "sarah@example.com", profile.Email)
	assert.Equal(t, "Sarah", profile.FirstName)
	assert.NotEqual(t, "secret1", profile.PasswordHash)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserID)

	logged, _, err := svc.Login("sarah@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, logged.ID)
}

func TestAuthService_SignUpValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.SignUp("not-an-email", "secret1", "A", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation:")

	_, _, err = svc.SignUp("a@b.com", "short", "A", "B")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation:")
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.SignUp("sarah@example.com", "secret1", "Sarah", "Chen")
	require.NoError(t, err)

	_, _, err = svc.SignUp("SARAH@example.com", "secret2", "Other", "Person")
	assert.EqualError(t, err, "email_taken")
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.SignUp("sarah@example.com", "secret1", "Sarah", "Chen")
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, _, err = svc.Login("nobody@example.com", "secret1")
	assert.EqualError(t, err, "invalid_credentials")

	_, _, err = svc.Login("sarah@example.com", "wrong-password")
	assert.EqualError(t, err, "invalid_credentials")
}

func TestAuthService_GetProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	profile, _, err := svc.SignUp("sarah@example.com", "secret1", "Sarah", "Chen")
	require.NoError(t, err)

	got, err := svc.GetProfile(profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", got.FirstName)

	_, err = svc.GetProfile(9999)
	assert.EqualError(t, err, "profile_not_found")
}
