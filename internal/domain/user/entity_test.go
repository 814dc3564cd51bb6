//go:build unit

package user_test

import (
	"testing"
	"time"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		b := builder.NewUserBuilder()

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		phone, _ := user.NewPhoneNumber("+91 98765 43210")
		expected, err := user.NewUser("Test User", email, phone, "hashed_password", user.RoleCustomer, b.Now)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "mixed case OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Mixed.Case@Example.COM") },
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing @ NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer OK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "business OK",
				mutate: func(b *builder.UserBuilder) { b.AsBusiness() },
			},
			{
				name:   "admin OK",
				mutate: func(b *builder.UserBuilder) { b.AsAdmin() },
			},
			{
				name:   "unknown NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty NG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name and phone", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name NG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrNameRequired,
			},
			{
				name:   "no phone OK",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("") },
			},
			{
				name:   "letters in phone NG",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("call me") },
				errIs:  user.ErrInvalidPhone,
			},
		})
	})
}

func TestEmailIsLowerCased(t *testing.T) {
	email, err := user.NewEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.Value())
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", p.Value())
}

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		role     user.Role
		required []user.Role
		want     bool
	}{
		{user.RoleCustomer, []user.Role{user.RoleCustomer}, true},
		{user.RoleCustomer, []user.Role{user.RoleBusiness}, false},
		{user.RoleBusiness, []user.Role{user.RoleCustomer, user.RoleBusiness}, true},
		{user.RoleAdmin, []user.Role{user.RoleBusiness}, true},
		{user.RoleBusiness, []user.Role{user.RoleAdmin}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Satisfies(tt.required...), "%s satisfies %v", tt.role, tt.required)
	}

	assert.True(t, user.RoleCustomer.IsSelfAssignable())
	assert.True(t, user.RoleBusiness.IsSelfAssignable())
	assert.False(t, user.RoleAdmin.IsSelfAssignable())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestUser_ApplyProfile(t *testing.T) {
	later := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	str := func(s string) *string { return &s }

	t.Run("only sent fields change", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		email, created := u.Email(), u.CreatedAt()

		require.NoError(t, u.ApplyProfile(user.ProfilePatch{Name: str("  Asha Rao ")}, later))

		assert.Equal(t, "Asha Rao", u.Name())
		assert.Equal(t, "+91 98765 43210", u.PhoneNumber().Value())
		assert.Equal(t, email, u.Email())
		assert.Equal(t, created, u.CreatedAt())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("empty phone and image clear them", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, u.ApplyProfile(user.ProfilePatch{Image: str("/uploads/a.png")}, later))

		require.NoError(t, u.ApplyProfile(user.ProfilePatch{PhoneNumber: str(""), Image: str("")}, later))

		assert.Empty(t, u.PhoneNumber().Value())
		assert.Empty(t, u.Image())
	})

	t.Run("rejected edits leave the user untouched", func(t *testing.T) {
		cases := []struct {
			name  string
			patch user.ProfilePatch
			errIs error
		}{
			{name: "blank name", patch: user.ProfilePatch{Name: str("   ")}, errIs: user.ErrNameRequired},
			{name: "bad phone", patch: user.ProfilePatch{Name: str("New"), PhoneNumber: str("call me")}, errIs: user.ErrInvalidPhone},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				u, err := builder.NewUserBuilder().BuildDomain()
				require.NoError(t, err)
				before := *u

				err = u.ApplyProfile(tc.patch, later)

				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, before, *u)
			})
		}
	})
}
