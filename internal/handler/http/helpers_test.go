package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-rest-auth/internal/config"
	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/mock"
	"github.com/MKhiriev/go-rest-auth/internal/service"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminIdentity = models.Identity{UserID: "admin-1", Email: "admin@example.com", Role: models.RoleAdmin}
	userIdentity  = models.Identity{UserID: "user-1", Email: "user@example.com", Role: models.RoleUser}
)

type serviceMocks struct {
	auth    *mock.MockAuthService
	user    *mock.MockUserService
	admin   *mock.MockAdminUserService
	post    *mock.MockPostService
	profile *mock.MockProfileService
	appInfo *mock.MockAppInfoService
}

// newTestHandler builds a Handler backed by gomock services.
func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		user:    mock.NewMockUserService(ctrl),
		admin:   mock.NewMockAdminUserService(ctrl),
		post:    mock.NewMockPostService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:      m.auth,
		UserService:      m.user,
		AdminUserService: m.admin,
		PostService:      m.post,
		ProfileService:   m.profile,
		AppInfoService:   m.appInfo,
	}, config.Server{}, logger.Nop())

	return h, m
}

// loginAs makes the bearer token "<UserID>-token" resolve to identity and
// returns the matching Authorization header value.
func (m *serviceMocks) loginAs(identity models.Identity) string {
	token := identity.UserID + "-token"
	id := identity
	m.auth.EXPECT().VerifyAndResolveUser(gomock.Any(), token).Return(&id, nil).AnyTimes()
	return "Bearer " + token
}

func doRequest(t *testing.T, h http.Handler, method, path, authHeader, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set(authorizationHeader, authHeader)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}
