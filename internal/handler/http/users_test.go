package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-rest-auth/internal/service"
	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userFixture() models.User {
	first := "Ann"
	return models.User{
		ID:        "u-1",
		Email:     "ann@example.com",
		Password:  "$2a$10$hash",
		Firstname: &first,
		Role:      models.RoleUser,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateUser(t *testing.T) {
	t.Run("admin creates user", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)
		role := models.RoleAdmin
		m.admin.EXPECT().CreateUser(gomock.Any(), models.CreateUserRequest{Email: "ann@example.com", Role: &role}).
			Return(userFixture(), nil)

		rr := doRequest(t, h.Init(), http.MethodPost, "/users", auth, `{"email":"ann@example.com","role":"ADMIN"}`)

		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		body := decodeBody[map[string]any](t, rr)
		assert.Equal(t, "u-1", body["id"])
		assert.NotContains(t, body, "password")
		assert.NotContains(t, rr.Body.String(), "$2a$")
	})

	t.Run("unknown role", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)

		rr := doRequest(t, h.Init(), http.MethodPost, "/users", auth, `{"email":"ann@example.com","role":"GUEST"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody[models.ErrorResponse](t, rr)
		assert.Equal(t, []string{"role must be one of the following values: USER, ADMIN"}, body.Errors)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(userIdentity)

		rr := doRequest(t, h.Init(), http.MethodPost, "/users", auth, `{"email":"ann@example.com"}`)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"You don't have the permission"}`, rr.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)
		m.admin.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrEmailConflict)

		rr := doRequest(t, h.Init(), http.MethodPost, "/users", auth, `{"email":"ann@example.com"}`)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestListAndGetUsers(t *testing.T) {
	h, m := newTestHandler(t)
	auth := m.loginAs(adminIdentity)
	m.admin.EXPECT().ListUsers(gomock.Any()).Return([]models.User{userFixture()}, nil)
	m.admin.EXPECT().GetUser(gomock.Any(), "u-1").Return(userFixture(), nil)
	m.admin.EXPECT().GetUser(gomock.Any(), "missing").Return(models.User{}, service.ErrUserNotFound)
	router := h.Init()

	rr := doRequest(t, router, http.MethodGet, "/users", auth, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decodeBody[[]models.UserResponse](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "ann@example.com", list[0].Email)

	rr = doRequest(t, router, http.MethodGet, "/users/u-1", auth, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/users/missing", auth, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"user not found"}`, rr.Body.String())
}

func TestSearchUsers(t *testing.T) {
	t.Run("passes filter", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)
		m.admin.EXPECT().SearchUsers(gomock.Any(), models.UserFilter{Email: "ann@example.com", Lastname: "li"}).
			Return([]models.User{userFixture()}, nil)

		rr := doRequest(t, h.Init(), http.MethodGet, "/users/search?email=ann@example.com&lastname=li", auth, "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid email filter", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)

		rr := doRequest(t, h.Init(), http.MethodGet, "/users/search?email=nope", auth, "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAdminUpdates(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(m *serviceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name: "update names",
			path: "/users/u-1", body: `{"lastname":"Lee"}`,
			setup: func(m *serviceMocks) {
				m.admin.EXPECT().UpdateUser(gomock.Any(), "u-1", gomock.Any()).Return(userFixture(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "force password",
			path: "/users/password/u-1", body: `{"password":"newpass"}`,
			setup: func(m *serviceMocks) {
				m.admin.EXPECT().UpdatePassword(gomock.Any(), "u-1", "newpass").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":true}`,
		},
		{
			name: "force password too short",
			path: "/users/password/u-1", body: `{"password":"123"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "change role",
			path: "/users/role/u-1", body: `{"role":"ADMIN"}`,
			setup: func(m *serviceMocks) {
				m.admin.EXPECT().UpdateRole(gomock.Any(), "u-1", models.RoleAdmin).Return(userFixture(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "change email conflict",
			path: "/users/email/u-1", body: `{"email":"taken@example.com"}`,
			setup: func(m *serviceMocks) {
				m.admin.EXPECT().UpdateEmail(gomock.Any(), "u-1", "taken@example.com").Return(models.User{}, service.ErrEmailConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			path:   "/users/u-1",
			setup: func(m *serviceMocks) {
				m.admin.EXPECT().RemoveUser(gomock.Any(), "u-1").Return(userFixture(), nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			auth := m.loginAs(adminIdentity)
			if tt.setup != nil {
				tt.setup(m)
			}
			method := tt.method
			if method == "" {
				method = http.MethodPut
			}

			rr := doRequest(t, h.Init(), method, tt.path, auth, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestUpdateMe(t *testing.T) {
	t.Run("user updates own names", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(userIdentity)
		last := "Lee"
		m.user.EXPECT().UpdateMe(gomock.Any(), userIdentity, models.UpdateUserRequest{Lastname: &last}).
			Return(userFixture(), nil)

		rr := doRequest(t, h.Init(), http.MethodPut, "/users/update/me", auth, `{"lastname":"Lee"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("admin passes the user role check", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(adminIdentity)
		m.user.EXPECT().UpdateMe(gomock.Any(), adminIdentity, gomock.Any()).Return(userFixture(), nil)

		rr := doRequest(t, h.Init(), http.MethodPut, "/users/update/me", auth, `{}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUpdateMyPassword(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(userIdentity)
		m.user.EXPECT().UpdateMyPassword(gomock.Any(), userIdentity, models.UpdatePasswordRequest{
			Password: "newpass", CurrentPassword: "oldpass",
		}).Return(nil)

		rr := doRequest(t, h.Init(), http.MethodPut, "/users/me/password", auth,
			`{"password":"newpass","currentPassword":"oldpass"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"data":true}`, rr.Body.String())
	})

	t.Run("wrong current password", func(t *testing.T) {
		h, m := newTestHandler(t)
		auth := m.loginAs(userIdentity)
		m.user.EXPECT().UpdateMyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrIncorrectPassword)

		rr := doRequest(t, h.Init(), http.MethodPut, "/users/me/password", auth,
			`{"password":"newpass","currentPassword":"badpass"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"password is incorrect"}`, rr.Body.String())
	})
}

// bcrypt cannot hash more than 72 bytes, so every route that takes a
// password answers 400 before any service is called.
func TestPasswordRoutes_RejectOverlongPasswords(t *testing.T) {
	long := strings.Repeat("x", 73)
	const msg = "password must be shorter than or equal to 72 bytes"

	tests := []struct {
		name     string
		path     string
		method   string
		identity *models.Identity
		body     string
	}{
		{"register", "/auth/register", http.MethodPost, nil, `{"email":"a@b.com","password":"` + long + `","username":"alice"}`},
		{"login", "/auth/login", http.MethodPost, nil, `{"email":"a@b.com","password":"` + long + `"}`},
		{"admin create", "/users", http.MethodPost, &adminIdentity, `{"email":"a@b.com","password":"` + long + `"}`},
		{"force password", "/users/password/u-1", http.MethodPut, &adminIdentity, `{"password":"` + long + `"}`},
		{"own password", "/users/me/password", http.MethodPut, &userIdentity, `{"password":"` + long + `","currentPassword":"oldpass"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			auth := ""
			if tt.identity != nil {
				auth = m.loginAs(*tt.identity)
			}

			rr := doRequest(t, h.Init(), tt.method, tt.path, auth, tt.body)

			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			body := decodeBody[models.ErrorResponse](t, rr)
			assert.Equal(t, "Bad Request", body.Message)
			assert.Equal(t, []string{msg}, body.Errors)
		})
	}
}
