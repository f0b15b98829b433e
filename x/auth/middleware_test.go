package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/session"
)

const testSecret = "unittest-secret"

func setupAuth(t *testing.T, config core.Config) core.AuthService {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	config.SessionSecret = testSecret
	sessionService := session.NewService(session.NewRepository(rdb), config)
	return NewService(config, sessionService)
}

func sign(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := session.Sign(testSecret, core.SessionClaims{
		Subject:   subject,
		Role:      role,
		JTI:       subject + "-jti",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
	return token
}

func identify(t *testing.T, s core.AuthService, req *http.Request) core.RequesterContext {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var requester core.RequesterContext
	h := s.IdentifyIdentity(func(c echo.Context) error {
		requester = c.Get(core.RequesterContextCtxKey).(core.RequesterContext)
		return nil
	})

	err := h(c)
	assert.NoError(t, err)
	return requester
}

func TestIdentifyAnonymous(t *testing.T) {
	s := setupAuth(t, core.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	requester := identify(t, s, req)
	assert.Equal(t, core.Unknown, requester.Type)
	assert.Equal(t, "", requester.ID)
}

func TestIdentifyMemberByBearer(t *testing.T) {
	s := setupAuth(t, core.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, "user-1", ""))
	requester := identify(t, s, req)
	assert.Equal(t, core.Member, requester.Type)
	assert.Equal(t, "user-1", requester.ID)
}

func TestIdentifyAdminByCookie(t *testing.T) {
	s := setupAuth(t, core.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: core.SessionCookieName, Value: sign(t, "user-2", "admin")})
	requester := identify(t, s, req)
	assert.Equal(t, core.Admin, requester.Type)
}

func TestIdentifyAdminByConfig(t *testing.T) {
	s := setupAuth(t, core.Config{Admins: []string{"user-3"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, "user-3", ""))
	requester := identify(t, s, req)
	assert.Equal(t, core.Admin, requester.Type)
}

func TestIdentifyBrokenToken(t *testing.T) {
	s := setupAuth(t, core.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	requester := identify(t, s, req)
	assert.Equal(t, core.Unknown, requester.Type)
}

func TestRestrict(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}

	tests := []struct {
		name      string
		principal Principal
		requester core.RequesterContext
		status    int
	}{
		{"admin passes admin", ISADMIN, core.RequesterContext{Type: core.Admin}, http.StatusNoContent},
		{"member rejected by admin", ISADMIN, core.RequesterContext{Type: core.Member}, http.StatusForbidden},
		{"unknown rejected by admin", ISADMIN, core.RequesterContext{Type: core.Unknown}, http.StatusForbidden},
		{"member passes known", ISKNOWN, core.RequesterContext{Type: core.Member}, http.StatusNoContent},
		{"unknown rejected by known", ISKNOWN, core.RequesterContext{Type: core.Unknown}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set(core.RequesterContextCtxKey, tt.requester)

			err := Restrict(tt.principal)(ok)(c)
			assert.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
