// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	"warden/internal/usecase"
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	store      repository.AccountStore
	classifier *entity.IdentityClassifier
	logger     *slog.Logger
}

// NewPasswordService is the constructor for passwordService. It receives all
// dependencies as interfaces and process-wide, immutable configuration.
func NewPasswordService(
	store repository.AccountStore,
	classifier *entity.IdentityClassifier,
	logger *slog.Logger,
) usecase.PasswordUsecase {
	return &passwordService{
		store:      store,
		classifier: classifier,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword classifies the target identity and either rejects the change
// locally or delegates it to the account store. The sink receives exactly one
// outcome per call. Protected identities are rejected before the store is
// contacted, so collaborator side effects (auditing, replication) never fire
// for them.
func (srv *passwordService) ChangePassword(ctx context.Context, change *entity.PasswordChange, sink usecase.ResultSink) {
	switch srv.classifier.Classify(change.Username) {
	case entity.IdentityAnonymous:
		srv.log(ctx).Warn("Rejected password change for anonymous principal", slog.String("username", change.Username))
		sink(domainerrors.NewInvalidArgumentError("user [%s] is anonymous and cannot be modified", change.Username))

		return
	case entity.IdentityInternal:
		srv.log(ctx).Warn("Rejected password change for internal principal", slog.String("username", change.Username))
		sink(domainerrors.NewInvalidArgumentError("user [%s] is internal", change.Username))

		return
	}

	// The store receives the identical change value it arrived with, and its
	// failure cause is forwarded untouched so callers can match on it.
	srv.store.ChangePassword(ctx, change, func(err error) {
		if err != nil {
			srv.log(ctx).Warn("Password change failed in account store", slog.String("username", change.Username), slog.Any("error", err))
			sink(err)

			return
		}

		srv.log(ctx).Debug("Password changed", slog.String("username", change.Username))
		sink(nil)
	})
}
