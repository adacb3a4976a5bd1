package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"media-ratings/internal/dto/request"
	"media-ratings/internal/dto/response"
	"media-ratings/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	signUpResp *response.SignUpResponse
	tokenResp  *response.TokenResponse
	err        error
}

func (s *stubAuthService) SignUp(_ context.Context, _ *request.SignUpRequest) (*response.SignUpResponse, error) {
	return s.signUpResp, s.err
}

func (s *stubAuthService) Token(_ context.Context, _ *request.TokenRequest) (*response.TokenResponse, error) {
	return s.tokenResp, s.err
}

func TestAuthHandler_SignUp(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		signUpResp: &response.SignUpResponse{Email: "reader@example.com", Username: "reader"},
	}, zap.NewNop())

	body := `{"email":"reader@example.com","username":"reader"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, "Confirmation code sent", resp.Message)
}

func TestAuthHandler_SignUp_BadBody(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_SignUp_ValidationError(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	body := `{"email":"not-an-email","username":"bad user!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.NotNil(t, resp.Errors)
}

func TestAuthHandler_SignUp_Conflict(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		err: errors.New("user with this username or e-mail already exists"),
	}, zap.NewNop())

	body := `{"email":"reader@example.com","username":"reader"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.SignUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Token(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		tokenResp: &response.TokenResponse{Token: "signed.jwt.token"},
	}, zap.NewNop())

	body := `{"username":"reader","confirmation_code":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Token(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Token_UnknownUser(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		err: errors.New("user ghost not found"),
	}, zap.NewNop())

	body := `{"username":"ghost","confirmation_code":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Token(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthHandler_Token_WrongCode(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{
		err: errors.New("invalid confirmation code"),
	}, zap.NewNop())

	body := `{"username":"reader","confirmation_code":"000000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Token(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
