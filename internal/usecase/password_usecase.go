// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"warden/internal/domain/entity"
)

// ResultSink receives the single outcome of a password change request. It is
// invoked exactly once per ChangePassword call: a nil error reports success,
// a non-nil error carries the failure cause. Store failures arrive with their
// identity preserved; the usecase never wraps or reclassifies them.
type ResultSink func(err error)

// PasswordUsecase decides whether a password change is permitted and, if so,
// delegates persistence to the account store. The call itself never blocks on
// the store; completion is reported through the sink.
type PasswordUsecase interface {
	// ChangePassword classifies the target identity and either rejects the
	// request locally or hands the unmodified change to the account store.
	ChangePassword(ctx context.Context, change *entity.PasswordChange, sink ResultSink)
}
