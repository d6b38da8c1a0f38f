// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/domain/service"
	"warden/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	classifier   *entity.IdentityClassifier
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	classifier *entity.IdentityClassifier,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		classifier:   classifier,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with an initial credential.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	// Reserved principals never become persisted accounts.
	if srv.classifier.Classify(input.Username) != entity.IdentityMutable {
		srv.log(ctx).Warn("Rejected registration for reserved principal", slog.String("username", input.Username))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("username is reserved")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		FullName: input.FullName,
		Roles:    entity.Roles{entity.RoleUser},
		Enabled:  true,
	}

	if err := srv.userRepo.Create(ctx, newUser, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrAccountAlreadyExists.WrapMessage("username already registered")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and issues a fresh token pair.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	storedHash, err := srv.userRepo.PasswordHashByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load credential for login")
	}

	// Check password outside any persistence path (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, storedHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	loggedInUser, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !loggedInUser.Enabled {
		srv.log(ctx).Warn("Login rejected for disabled account", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Username, loggedInUser.Roles.ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		User:             loggedInUser,
	}, nil
}

// GetAccount fetches a single account by username.
func (srv *accountService) GetAccount(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return user, nil
}
