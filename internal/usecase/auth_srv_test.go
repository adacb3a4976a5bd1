package usecase

import (
	"context"
	"testing"

	"media-ratings/internal/auth"
	"media-ratings/internal/data/entity"
	"media-ratings/internal/dto/request"
	"media-ratings/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:  utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1},
		Code: utils.CodeConfig{Length: 6},
	}
}

func TestSignUp_CreatesInactiveUser(t *testing.T) {
	repo, users, _, _ := testRepository()
	mail := &fakeMailer{}
	svc := NewAuthService(repo, testConfig(), mail, testLogger())

	resp, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "reader",
	})
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", resp.Email)
	assert.Equal(t, "reader", resp.Username)

	require.Len(t, users.users, 1)
	created := users.users[0]
	assert.False(t, created.IsActive)
	assert.Equal(t, entity.RoleUser, created.Role)
	require.NotNil(t, created.ConfirmationCode)
	assert.Len(t, *created.ConfirmationCode, 6)

	require.Len(t, mail.sentTo, 1)
	assert.Equal(t, "reader@example.com", mail.sentTo[0])
	assert.Equal(t, *created.ConfirmationCode, mail.sentCodes[0])
}

func TestSignUp_RepeatReplacesCode(t *testing.T) {
	repo, users, _, _ := testRepository()
	mail := &fakeMailer{}
	svc := NewAuthService(repo, testConfig(), mail, testLogger())

	req := &request.SignUpRequest{Email: "reader@example.com", Username: "reader"}

	_, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), req)
	require.NoError(t, err)

	// Still one account; a fresh code was issued for it
	assert.Len(t, users.users, 1)
	assert.Len(t, mail.sentCodes, 2)
	assert.Equal(t, *users.users[0].ConfirmationCode, mail.sentCodes[1])
}

func TestSignUp_PartialConflict(t *testing.T) {
	repo, _, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{}, testLogger())

	_, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "reader",
	})
	require.NoError(t, err)

	// Same username, different email
	_, err = svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "other@example.com",
		Username: "reader",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Same email, different username
	_, err = svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "other",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSignUp_InvalidUsername(t *testing.T) {
	repo, _, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{}, testLogger())

	_, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "bad user!",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestSignUp_MailFailureDoesNotFail(t *testing.T) {
	repo, users, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{fail: true}, testLogger())

	_, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "reader",
	})
	require.NoError(t, err)

	// The code is persisted even though delivery failed
	require.Len(t, users.users, 1)
	assert.NotNil(t, users.users[0].ConfirmationCode)
}

func TestToken_ExchangesCodeAndActivates(t *testing.T) {
	repo, users, _, _ := testRepository()
	config := testConfig()
	svc := NewAuthService(repo, config, &fakeMailer{}, testLogger())

	_, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "reader",
	})
	require.NoError(t, err)

	code := *users.users[0].ConfirmationCode

	resp, err := svc.Token(context.Background(), &request.TokenRequest{
		Username:         "reader",
		ConfirmationCode: code,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	assert.True(t, users.users[0].IsActive)

	claims, err := auth.VerifyToken(resp.Token, config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestToken_WrongCode(t *testing.T) {
	repo, users, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{}, testLogger())

	_, err := svc.SignUp(context.Background(), &request.SignUpRequest{
		Email:    "reader@example.com",
		Username: "reader",
	})
	require.NoError(t, err)

	_, err = svc.Token(context.Background(), &request.TokenRequest{
		Username:         "reader",
		ConfirmationCode: "000000wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid confirmation code")
	assert.False(t, users.users[0].IsActive)
}

func TestToken_UnknownUser(t *testing.T) {
	repo, _, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{}, testLogger())

	_, err := svc.Token(context.Background(), &request.TokenRequest{
		Username:         "ghost",
		ConfirmationCode: "123456",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestToken_OldCodeInvalidAfterResignup(t *testing.T) {
	repo, users, _, _ := testRepository()
	svc := NewAuthService(repo, testConfig(), &fakeMailer{}, testLogger())

	req := &request.SignUpRequest{Email: "reader@example.com", Username: "reader"}

	_, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)
	oldCode := *users.users[0].ConfirmationCode

	_, err = svc.SignUp(context.Background(), req)
	require.NoError(t, err)
	newCode := *users.users[0].ConfirmationCode

	if oldCode == newCode {
		t.Skip("generated codes collided")
	}

	_, err = svc.Token(context.Background(), &request.TokenRequest{
		Username:         "reader",
		ConfirmationCode: oldCode,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid confirmation code")
}
