// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"warden/internal/domain/entity"
	"warden/internal/domain/repository"
	"warden/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository and
// repository.AccountStore interfaces using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// NewAccountStore exposes the same persistence backend through the
// asynchronous AccountStore contract used by the password change flow.
func NewAccountStore(db *gorm.DB) repository.AccountStore {
	return &userRepository{db: db}
}

// FindByUsername retrieves a single account by its unique login name.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new account together with its initial password hash.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash []byte) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrUsernameTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Propagate the database-generated identity and timestamps to the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// PasswordHashByUsername retrieves the stored credential for authentication checks.
func (repo *userRepository) PasswordHashByUsername(ctx context.Context, username string) ([]byte, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Select("password_hash").
		Where("username = ?", username).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load password hash")
	}

	return userM.PasswordHash, nil
}

// ChangePassword replaces the stored password hash for the account named by
// change.Username. The outcome is reported through complete exactly once; the
// completion may fire before ChangePassword returns.
func (repo *userRepository) ChangePassword(ctx context.Context, change *entity.PasswordChange, complete repository.CompletionFunc) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", change.Username).
		Updates(map[string]any{
			"password_hash": change.PasswordHash,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		complete(errors.Wrap(result.Error, "failed to update password hash"))

		return
	}

	if result.RowsAffected == 0 {
		complete(repository.ErrUserNotFound)

		return
	}

	complete(nil)
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:        userM.ID,
		Username:  userM.Username,
		Email:     userM.Email,
		FullName:  userM.FullName,
		Roles:     entity.RolesFromStrings(userM.Roles),
		Enabled:   userM.Enabled,
		CreatedAt: userM.CreatedAt,
		UpdatedAt: userM.UpdatedAt,
	}
}

// fromUserDomain maps the pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Roles:    user.Roles.ToStrings(),
		Enabled:  user.Enabled,
	}
}
