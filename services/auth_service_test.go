package services

import (
	"testing"

	"room-booking-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLogin(t *testing.T) {
	db := newTestDB(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		FullName: "Admin", Username: "admin@hotel.local", Password: string(hash),
	}).Error)

	auth := NewAuthService(db)

	token, err := auth.Login("admin@hotel.local", "secret123")
	require.NoError(t, err)
	assert.True(t, auth.Verify(token))

	_, err = auth.Login("admin@hotel.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, auth.Verify("forged-token"))
}
