//go:build unit

package password_test

import (
	"strings"
	"testing"

	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashWithCost("password123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.True(t, errs.Is(password.ComparePassword(hash, "password124"), password.ErrMismatch))
	assert.True(t, errs.Is(password.ComparePassword(hash, ""), password.ErrInvalidPassword))

	err = password.ComparePassword("not-a-bcrypt-hash", "password123")
	assert.Error(t, err)
	assert.False(t, errs.Is(err, password.ErrMismatch))
}

func TestHashRejectsUnhashableInput(t *testing.T) {
	for _, in := range []string{"", strings.Repeat("a", 73)} {
		_, err := password.HashPassword(in)
		assert.True(t, errs.Is(err, password.ErrInvalidPassword))
	}
}
