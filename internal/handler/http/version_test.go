package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHello(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := doRequest(t, h.Init(), http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello World!", rr.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	rr := doRequest(t, h.Init(), http.MethodGet, "/version", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{"database up", nil, http.StatusOK},
		{"database down", fmt.Errorf("%w: connection refused", store.ErrStorageUnavailable), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(tt.pingErr)

			rr := doRequest(t, h.Init(), http.MethodGet, "/health", "", "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1")
	router := h.Init()

	doRequest(t, router, http.MethodGet, "/version", "", "")
	rr := doRequest(t, router, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_request_duration_seconds")
}
