package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-ratings/internal/data/repository"
	"media-ratings/internal/dto/request"
	"media-ratings/internal/dto/response"
	"media-ratings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubTitleService parses the titleID the way the real service does, so
// routing tests exercise the malformed-ID path end to end.
type stubTitleService struct {
	getResp *response.TitleResponse
	err     error
}

func (s *stubTitleService) List(_ context.Context, _ repository.TitleFilter, _ *request.PaginatedRequest) (*response.PaginatedResponse[response.TitleResponse], error) {
	return nil, s.err
}

func (s *stubTitleService) Get(_ context.Context, titleID string) (*response.TitleResponse, error) {
	if _, err := uuid.Parse(titleID); err != nil {
		return nil, fmt.Errorf("invalid title ID format %s", titleID)
	}
	return s.getResp, s.err
}

func (s *stubTitleService) Create(_ context.Context, _ *request.TitleRequest) (*response.TitleResponse, error) {
	return nil, s.err
}

func (s *stubTitleService) Update(_ context.Context, _ string, _ *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	return nil, s.err
}

func (s *stubTitleService) Replace(_ context.Context, _ string, _ *request.TitleRequest) (*response.TitleResponse, error) {
	return nil, s.err
}

func (s *stubTitleService) Delete(_ context.Context, _ string) error {
	return s.err
}

func titleRouter(service *stubTitleService) *chi.Mux {
	handler := NewTitleHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/api/titles/{titleID}", handler.Get)
	return r
}

func TestTitleHandler_Get(t *testing.T) {
	rating := 8
	router := titleRouter(&stubTitleService{
		getResp: &response.TitleResponse{ID: uuid.New().String(), Name: "Solaris", Rating: &rating},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/titles/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
}

func TestTitleHandler_Get_MalformedID(t *testing.T) {
	router := titleRouter(&stubTitleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/titles/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.Contains(t, resp.Message, "invalid title ID format")
}

func TestTitleHandler_Get_NotFound(t *testing.T) {
	missing := uuid.New()
	router := titleRouter(&stubTitleService{
		err: fmt.Errorf("title %s not found", missing),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/titles/"+missing.String(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
