package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayo/teamwork-backend/internal/domain"
	"github.com/tayo/teamwork-backend/internal/repository/postgres"
	"github.com/tayo/teamwork-backend/internal/service"
	"github.com/tayo/teamwork-backend/internal/testutil"
	"github.com/tayo/teamwork-backend/internal/token"
)

func newAuthService(t *testing.T) (*service.AuthService, *testutil.TestDB, *token.Manager) {
	t.Helper()
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	return service.NewAuthService(repos.User, tokens), testDB, tokens
}

func TestAuthService_SignIn(t *testing.T) {
	authService, testDB, _ := newAuthService(t)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("signin@test.local").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful sign in",
			email:    user.Email,
			password: rawPassword,
		},
		{
			name:     "wrong password",
			email:    user.Email,
			password: "wrongpassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "non-existent email",
			email:    "nobody@x.com",
			password: "anypassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.SignIn(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				// Unknown email and wrong password must be indistinguishable.
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_SignIn_TokenClaims(t *testing.T) {
	authService, testDB, tokens := newAuthService(t)
	ctx := context.Background()

	admin, rawPassword := testutil.NewUserBuilder().
		WithEmail("claims@test.local").
		WithAdmin().
		Build(t, testDB.DB)

	result, err := authService.SignIn(ctx, admin.Email, rawPassword)
	require.NoError(t, err)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, admin.FirstName, claims.FirstName)
	assert.True(t, claims.Admin)
}

func TestAuthService_CreateUser(t *testing.T) {
	authService, testDB, tokens := newAuthService(t)
	ctx := context.Background()

	validInput := service.CreateUserInput{
		FirstName:  "Toyosi",
		LastName:   "Shode",
		Email:      "toyosi@test.local",
		Password:   "password123",
		Gender:     "male",
		JobRole:    "frontend developer",
		Department: "software",
		Address:    "15 Fagba road",
	}

	tests := []struct {
		name    string
		input   service.CreateUserInput
		setup   func()
		wantErr error
	}{
		{
			name:  "successful creation",
			input: validInput,
		},
		{
			name: "duplicate email",
			input: func() service.CreateUserInput {
				in := validInput
				in.Email = "existing@test.local"
				return in
			}(),
			setup: func() {
				testutil.NewUserBuilder().
					WithEmail("existing@test.local").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name: "missing password",
			input: func() service.CreateUserInput {
				in := validInput
				in.Password = ""
				return in
			}(),
			wantErr: domain.ErrMissingField,
		},
		{
			name: "missing email",
			input: func() service.CreateUserInput {
				in := validInput
				in.Email = ""
				return in
			}(),
			wantErr: domain.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.CreateUser(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, result.User.ID)
			assert.Equal(t, tt.input.Email, result.User.Email)
			assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)

			// The token belongs to the created user, not the caller.
			claims, err := tokens.Verify(result.Token)
			require.NoError(t, err)
			assert.Equal(t, result.User.ID, claims.UserID)
			assert.Equal(t, tt.input.FirstName, claims.FirstName)
		})
	}
}

func TestAuthService_CreateUser_SequentialIDs(t *testing.T) {
	authService, testDB, _ := newAuthService(t)
	ctx := context.Background()

	existing, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	result, err := authService.CreateUser(ctx, service.CreateUserInput{
		FirstName: "New",
		LastName:  "User",
		Email:     "sequential@test.local",
		Password:  "password123",
	})
	require.NoError(t, err)
	assert.Greater(t, result.User.ID, existing.ID)
}

func TestAuthService_ListUsers(t *testing.T) {
	authService, testDB, _ := newAuthService(t)
	ctx := context.Background()

	testutil.NewUserBuilder().WithEmail("a@test.local").Build(t, testDB.DB)
	testutil.NewUserBuilder().WithEmail("b@test.local").Build(t, testDB.DB)

	users, err := authService.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
