package usecase

import (
	"context"
	"fmt"
	"time"

	"media-ratings/internal/auth"
	"media-ratings/internal/data/entity"
	"media-ratings/internal/data/repository"
	"media-ratings/internal/dto/request"
	"media-ratings/internal/dto/response"
	"media-ratings/pkg/mailer"
	"media-ratings/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error)
	Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

// SignUp gets or creates an inactive user for the (email, username) pair,
// then stores and mails a fresh confirmation code. Re-signing up is allowed
// and invalidates the previously issued code.
func (s *authService) SignUp(ctx context.Context, req *request.SignUpRequest) (*response.SignUpResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.lookupSignupUser(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		now := time.Now()
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username: req.Username,
			Email:    req.Email,
			Role:     entity.RoleUser,
			IsActive: false,
		}

		if err := s.repo.User.Create(ctx, user); err != nil {
			s.log.Error("Failed to create user",
				zap.Error(err), zap.String("username", req.Username))
			return nil, fmt.Errorf("failed to create account")
		}
	}

	// A fresh code always replaces the pending one
	code := utils.GenerateConfirmationCode(s.config.Code.Length)
	if err := s.repo.User.SetConfirmationCode(ctx, user.ID, code); err != nil {
		s.log.Error("Failed to store confirmation code",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to generate confirmation code")
	}

	if err := s.mail.SendConfirmationCode(ctx, user.Email, code); err != nil {
		// The code is persisted; delivery failure should not lose the signup
		s.log.Warn("Failed to deliver confirmation code",
			zap.Error(err), zap.String("email", user.Email))
	}

	s.log.Info("Signup processed",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.SignUpResponse{
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

// Token exchanges a confirmation code for a signed access token and marks
// the account active.
func (s *authService) Token(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Token request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for token exchange",
			zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user %s not found", req.Username)
	}

	// Exact, case-sensitive match against the pending code
	if user.ConfirmationCode == nil || *user.ConfirmationCode != req.ConfirmationCode {
		s.log.Warn("Invalid confirmation code",
			zap.String("username", req.Username))
		return nil, fmt.Errorf("invalid confirmation code")
	}

	if err := s.repo.User.Activate(ctx, user.ID); err != nil {
		s.log.Error("Failed to activate user",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to activate account")
	}
	user.IsActive = true

	token, err := auth.GenerateToken(user, s.config.JWT)
	if err != nil {
		s.log.Error("Failed to issue token",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token")
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.TokenResponse{Token: token}, nil
}

// lookupSignupUser resolves the (username, email) pair. When both match the
// same user that user is returned; when neither matches it returns nil so the
// caller creates one. Any partial match is a uniqueness conflict.
func (s *authService) lookupSignupUser(ctx context.Context, username, email string) (*entity.User, error) {
	byUsername, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("failed to check username")
	}

	byEmail, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}

	if byUsername == nil && byEmail == nil {
		return nil, nil
	}

	if byUsername != nil && byEmail != nil && byUsername.ID == byEmail.ID {
		return byUsername, nil
	}

	return nil, fmt.Errorf("user with this username or e-mail already exists")
}
