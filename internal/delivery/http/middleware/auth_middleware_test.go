package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "warden/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/accounts/joe", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetPath("/admin/accounts/:username")
	c.SetParamNames("username")
	c.SetParamValues("joe")

	return c, rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	t.Run("allows a caller holding the role", func(t *testing.T) {
		c, rec := newAuthTestContext(t)
		c.Set(KeyRoles, []string{"user", "admin"})

		var called bool
		require.NoError(t, m.RequireRole("admin")(okHandler(&called))(c))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids a caller without the role", func(t *testing.T) {
		c, rec := newAuthTestContext(t)
		c.Set(KeyRoles, []string{"user"})

		var called bool
		require.NoError(t, m.RequireRole("admin")(okHandler(&called))(c))

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("forbids when role information is missing", func(t *testing.T) {
		c, rec := newAuthTestContext(t)

		var called bool
		require.NoError(t, m.RequireRole("admin")(okHandler(&called))(c))

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthMiddleware_RequireSelfOrRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	t.Run("allows the account owner", func(t *testing.T) {
		c, rec := newAuthTestContext(t)
		c.Set(KeyUsername, "joe")
		c.Set(KeyRoles, []string{"user"})

		var called bool
		require.NoError(t, m.RequireSelfOrRole("admin")(okHandler(&called))(c))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allows an admin acting on another account", func(t *testing.T) {
		c, rec := newAuthTestContext(t)
		c.Set(KeyUsername, "operator")
		c.Set(KeyRoles, []string{"admin"})

		var called bool
		require.NoError(t, m.RequireSelfOrRole("admin")(okHandler(&called))(c))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids an unprivileged caller acting on another account", func(t *testing.T) {
		c, rec := newAuthTestContext(t)
		c.Set(KeyUsername, "mallory")
		c.Set(KeyRoles, []string{"user"})

		var called bool
		require.NoError(t, m.RequireSelfOrRole("admin")(okHandler(&called))(c))

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
