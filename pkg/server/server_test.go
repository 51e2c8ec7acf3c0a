package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/cloud-sentry/pkg/models/api"
	"github.com/de-tools/cloud-sentry/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(ctx context.Context) (*domain.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func newTestAPI(renderer *mockRenderer) *WebAPI {
	return NewWebAPI(zerolog.Nop(), Config{
		Addr:         "localhost:0",
		Dependencies: Dependencies{Renderer: renderer},
	})
}

func TestRoutes(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything).Return(&domain.Dashboard{
		KPI: domain.ChartSpec{Kind: domain.ChartKindKPI, Title: "Latest AWS Cost ($)", Value: 12.5},
	}, nil)

	webAPI := newTestAPI(renderer)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		contentType    string
	}{
		{name: "home", path: "/", expectedStatus: http.StatusOK, contentType: "text/html"},
		{name: "health", path: "/healthz", expectedStatus: http.StatusOK, contentType: "application/json"},
		{name: "dashboard page", path: "/dashboard", expectedStatus: http.StatusOK, contentType: "text/html"},
		{name: "dashboard api", path: "/api/v1/dashboard", expectedStatus: http.StatusOK, contentType: "application/json"},
		{name: "unknown route", path: "/nope", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			webAPI.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestDashboardAPIPayload(t *testing.T) {
	renderer := &mockRenderer{}
	renderer.On("Render", mock.Anything).Return(&domain.Dashboard{
		KPI:       domain.ChartSpec{Kind: domain.ChartKindKPI, Title: "Latest AWS Cost ($)", Value: 12.5},
		Trend:     domain.ChartSpec{Kind: domain.ChartKindLine, Title: "AWS Cost Trend"},
		Breakdown: domain.ChartSpec{Kind: domain.ChartKindBar, Title: "Daily AWS Cost Breakdown"},
	}, nil)

	webAPI := newTestAPI(renderer)

	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var response api.Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 12.5, response.KPI.Value)
	assert.Equal(t, "line", response.Trend.Kind)
	assert.Equal(t, "bar", response.Breakdown.Kind)
}

func TestDashboardOnlyExposesReads(t *testing.T) {
	renderer := &mockRenderer{}
	webAPI := newTestAPI(renderer)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		webAPI.Router().ServeHTTP(rec, httptest.NewRequest(method, "/api/v1/dashboard", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}
