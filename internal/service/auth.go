package service

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmtrack/internal/auth"
	"github.com/umalmyha/crmtrack/internal/config"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/internal/repository"
	"github.com/umalmyha/crmtrack/pkg/db/transactor"
)

// AuthService is the identity provider: it owns signup, credential
// verification and refresh token rotation. The rest of the system only ever
// sees the stable user id it puts into the jwt subject.
type AuthService interface {
	Signup(ctx context.Context, email string, password string, displayName *string) (*model.User, error)
	Login(ctx context.Context, email string, password string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
	Logout(ctx context.Context, tokenID string) error
	Refresh(ctx context.Context, tokenID string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error)
}

type authService struct {
	jwtIssuer    *auth.JwtIssuer
	rfrTokenCfg  *config.RefreshTokenCfg
	trx          transactor.Transactor
	userRepo     repository.UserRepository
	rfrTokenRepo repository.RefreshTokenRepository
}

// NewAuthService builds new AuthService
func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	rfrTokenCfg *config.RefreshTokenCfg,
	trx transactor.Transactor,
	userRepo repository.UserRepository,
	rfrTokenRepo repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		jwtIssuer:    jwtIssuer,
		rfrTokenCfg:  rfrTokenCfg,
		trx:          trx,
		userRepo:     userRepo,
		rfrTokenRepo: rfrTokenRepo,
	}
}

func (s *authService) Signup(ctx context.Context, email string, password string, displayName *string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "email is already taken")
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  displayName,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email string, password string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, echo.ErrUnauthorized
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, echo.ErrUnauthorized
	}

	jwtToken, err := s.jwtIssuer.Sign(user.ID, now)
	if err != nil {
		return nil, nil, err
	}

	rfrToken := s.newRefreshToken(user.ID, fingerprint, now)

	err = s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		tokens, err := s.rfrTokenRepo.FindTokensByUserID(ctx, user.ID)
		if err != nil {
			return err
		}

		if len(tokens) >= s.rfrTokenCfg.MaxCount {
			if err := s.rfrTokenRepo.DeleteByUserID(ctx, user.ID); err != nil {
				return err
			}
		}

		return s.rfrTokenRepo.Create(ctx, rfrToken)
	})
	if err != nil {
		return nil, nil, err
	}

	return jwtToken, rfrToken, nil
}

func (s *authService) Refresh(ctx context.Context, tokenID string, fingerprint string, now time.Time) (*auth.Jwt, *model.RefreshToken, error) {
	rfrToken, err := s.rfrTokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return nil, nil, err
	}

	if rfrToken == nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "non-existent refresh token provided")
	}

	// rotation: presented token is burnt whatever the verification outcome
	if err := s.rfrTokenRepo.DeleteByID(ctx, rfrToken.ID); err != nil {
		return nil, nil, err
	}

	if err := rfrToken.Verify(fingerprint, now); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, rfrToken.UserID)
	if err != nil {
		return nil, nil, err
	}

	if user == nil {
		return nil, nil, echo.ErrUnauthorized
	}

	jwtToken, err := s.jwtIssuer.Sign(user.ID, now)
	if err != nil {
		return nil, nil, err
	}

	newRfrToken := s.newRefreshToken(user.ID, fingerprint, now)
	if err := s.rfrTokenRepo.Create(ctx, newRfrToken); err != nil {
		return nil, nil, err
	}

	return jwtToken, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	if err := s.rfrTokenRepo.DeleteByID(ctx, tokenID); err != nil {
		return err
	}
	return nil
}

func (s *authService) newRefreshToken(userID string, fingerprint string, now time.Time) *model.RefreshToken {
	return &model.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		Fingerprint: fingerprint,
		ExpiresIn:   int(s.rfrTokenCfg.TimeToLive.Seconds()),
		CreatedAt:   now,
	}
}
