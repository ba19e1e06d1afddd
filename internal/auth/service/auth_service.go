package service

import (
	"context"
	"errors"

	"github.com/avasilyev/blogd/internal/common/crypto"
	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
	"github.com/avasilyev/blogd/internal/common/logger"
	"github.com/avasilyev/blogd/internal/observability/metrics"
	userdomain "github.com/avasilyev/blogd/internal/user/domain"
	userrepo "github.com/avasilyev/blogd/internal/user/repository"
)

// TokenMinter turns a verified username into an opaque session value.
type TokenMinter interface {
	Mint(username string) (string, error)
}

type AuthService struct {
	users  userrepo.Repository
	hasher crypto.PasswordHasher
	minter TokenMinter
	log    *logger.Logger
}

func NewAuthService(
	users userrepo.Repository,
	hasher crypto.PasswordHasher,
	minter TokenMinter,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		minter: minter,
		log:    log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

// Login verifies the submitted credentials and, on success, returns the
// minted session value for the caller to set as the session cookie. An
// unknown username and a wrong password are indistinguishable to the
// client: both fail with ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		metrics.LoginAttemptsTotal.WithLabelValues("store_error").Inc()
		return "", err
	}

	if err := s.hasher.Compare(user.EncryptedPassword, input.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_invalid_password",
			}).Warn("login failed: invalid password")
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_hash_malformed",
		}).Errorf("login failed: stored hash unusable: %v", err)
		metrics.LoginAttemptsTotal.WithLabelValues("hash_error").Inc()
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	token, err := s.minter.Mint(input.Username)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_mint_failed",
		}).Errorf("login failed: session mint error: %v", err)
		metrics.LoginAttemptsTotal.WithLabelValues("mint_error").Inc()
		return "", commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_success",
	}).Info("login success")
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionsMintedTotal.Inc()

	return token, nil
}

// Register hashes the password and appends a user record. There is no
// duplicate-username check: registering the same username twice creates
// two records, and lookups later pick whichever the store surfaces first.
func (s *AuthService) Register(ctx context.Context, input LoginInput) error {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateCredentials(input.Username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		return err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return commonerrors.ErrInternalError.WithCause(err)
	}

	err = s.users.Insert(ctx, userdomain.EncryptedUser{
		Username:          input.Username,
		EncryptedPassword: hash,
	})
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_insert_failed",
		}).Errorf("register failed: %v", err)
		return err
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_success",
	}).Info("register success")
	metrics.RegistrationsTotal.Inc()

	return nil
}

// Logout always succeeds; the caller clears the session cookie.
func (s *AuthService) Logout(ctx context.Context, username string) {
	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "logout",
	}).Info("logout")
	metrics.SessionsClearedTotal.Inc()
}
