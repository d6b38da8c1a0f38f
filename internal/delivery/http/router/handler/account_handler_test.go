package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"warden/internal/delivery/http/validator"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/repository"
	mockRepo "warden/internal/mocks/repository"
	mockService "warden/internal/mocks/service"
	"warden/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChangePasswordContext(t *testing.T, username, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPut, "/account/"+username+"/password", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/account/:username/password")
	c.SetParamNames("username")
	c.SetParamValues(username)

	return c, rec
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	classifier := entity.NewIdentityClassifier(false, "", entity.DefaultInternalPrincipals())
	hashed := []byte("$2a$10$fixedhashfortests")

	t.Run("persists the new hash and reports success", func(t *testing.T) {
		store := mockRepo.NewMockAccountStore(t)
		store.EXPECT().
			ChangePassword(mock.Anything, mock.AnythingOfType("*entity.PasswordChange"), mock.AnythingOfType("repository.CompletionFunc")).
			Run(func(_ context.Context, change *entity.PasswordChange, complete repository.CompletionFunc) {
				assert.Equal(t, "joe", change.Username)
				assert.Equal(t, hashed, change.PasswordHash)
				complete(nil)
			}).
			Once()

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().ValidatePasswordStrength("N3w-Secret!").Return(nil).Once()
		hasher.EXPECT().Hash("N3w-Secret!").Return(hashed, nil).Once()

		h := NewAccountHandler(nil, impl.NewPasswordService(store, classifier, logger), hasher, logger)

		c, rec := newChangePasswordContext(t, "joe", `{"password":"N3w-Secret!"}`)
		require.NoError(t, h.ChangePassword(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"joe"`)
	})

	t.Run("returns the rejection for internal identities untouched", func(t *testing.T) {
		store := mockRepo.NewMockAccountStore(t)

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().ValidatePasswordStrength("N3w-Secret!").Return(nil).Once()
		hasher.EXPECT().Hash("N3w-Secret!").Return(hashed, nil).Once()

		h := NewAccountHandler(nil, impl.NewPasswordService(store, classifier, logger), hasher, logger)

		c, _ := newChangePasswordContext(t, entity.PrincipalSystem, `{"password":"N3w-Secret!"}`)
		err := h.ChangePassword(c)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Contains(t, appErr.Message(), "is internal")

		store.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps an unknown account to not found", func(t *testing.T) {
		store := mockRepo.NewMockAccountStore(t)
		store.EXPECT().
			ChangePassword(mock.Anything, mock.AnythingOfType("*entity.PasswordChange"), mock.AnythingOfType("repository.CompletionFunc")).
			Run(func(_ context.Context, _ *entity.PasswordChange, complete repository.CompletionFunc) {
				complete(repository.ErrUserNotFound)
			}).
			Once()

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().ValidatePasswordStrength("N3w-Secret!").Return(nil).Once()
		hasher.EXPECT().Hash("N3w-Secret!").Return(hashed, nil).Once()

		h := NewAccountHandler(nil, impl.NewPasswordService(store, classifier, logger), hasher, logger)

		c, _ := newChangePasswordContext(t, "ghost", `{"password":"N3w-Secret!"}`)
		err := h.ChangePassword(c)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	})

	t.Run("rejects a missing password before touching the hasher", func(t *testing.T) {
		store := mockRepo.NewMockAccountStore(t)
		hasher := mockService.NewMockPasswordHasher(t)

		h := NewAccountHandler(nil, impl.NewPasswordService(store, classifier, logger), hasher, logger)

		c, rec := newChangePasswordContext(t, "joe", `{}`)
		require.NoError(t, h.ChangePassword(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("propagates password strength failures", func(t *testing.T) {
		store := mockRepo.NewMockAccountStore(t)

		hasher := mockService.NewMockPasswordHasher(t)
		hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength).Once()

		h := NewAccountHandler(nil, impl.NewPasswordService(store, classifier, logger), hasher, logger)

		c, _ := newChangePasswordContext(t, "joe", `{"password":"weak"}`)
		err := h.ChangePassword(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

		hasher.AssertNotCalled(t, "Hash", mock.Anything)
		store.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}
