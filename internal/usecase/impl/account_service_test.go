package impl

import (
	"context"
	"testing"
	"time"

	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	mockRepo "warden/internal/mocks/repository"
	mockSvc "warden/internal/mocks/service"
	"warden/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(
		userRepo,
		hasher,
		tokenService,
		entity.NewIdentityClassifier(false, "", nil),
		newDiscardLogger(),
	)

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "joe",
		Email:    "joe@example.com",
		FullName: "Joe Tester",
		Password: "Password123!",
	}
	hashed := []byte("$2a$10$hashed")

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return(hashed, nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), hashed).
		Run(func(ctx context.Context, user *entity.User, passwordHash []byte) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, input.Email, output.User.Email)
	assert.True(t, output.User.Enabled)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAccountService_Register_ReservedPrincipal(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: entity.PrincipalSystem,
		Email:    "system@example.com",
		Password: "Password123!",
	}

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "joe",
		Email:    "joe@example.com",
		Password: "weak",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(errors.New("too short"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "joe",
		Email:    "joe@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return([]byte("$2a$10$hashed"), nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), mock.Anything).
		Return(repository.ErrUsernameTaken)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "joe", Password: "Password123!"}
	storedHash := []byte("$2a$10$hashed")
	user := &entity.User{
		ID:       uuid.New(),
		Username: "joe",
		Roles:    entity.Roles{entity.RoleUser},
		Enabled:  true,
	}

	fx.userRepo.EXPECT().PasswordHashByUsername(ctx, input.Username).Return(storedHash, nil)
	fx.hasher.EXPECT().Check(input.Password, storedHash).Return(true)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, user.Username, []string{"user"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), output.RefreshExpiresAt, time.Minute)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "Password123!"}

	fx.userRepo.EXPECT().PasswordHashByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "joe", Password: "not-it"}
	storedHash := []byte("$2a$10$hashed")

	fx.userRepo.EXPECT().PasswordHashByUsername(ctx, input.Username).Return(storedHash, nil)
	fx.hasher.EXPECT().Check(input.Password, storedHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestAccountService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "joe", Password: "Password123!"}
	storedHash := []byte("$2a$10$hashed")
	user := &entity.User{ID: uuid.New(), Username: "joe", Enabled: false}

	fx.userRepo.EXPECT().PasswordHashByUsername(ctx, input.Username).Return(storedHash, nil)
	fx.hasher.EXPECT().Check(input.Password, storedHash).Return(true)
	fx.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAccountService_GetAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "joe", Enabled: true}

	fx.userRepo.EXPECT().FindByUsername(ctx, "joe").Return(user, nil)

	found, err := fx.service.GetAccount(ctx, "joe")

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.GetAccount(ctx, "ghost")

	require.Error(t, err)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
