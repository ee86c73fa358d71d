package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/healthtrack-backend/internal/users"
	pkgAuth "github.com/angelmondragon/healthtrack-backend/pkg/auth"
	"github.com/angelmondragon/healthtrack-backend/pkg/config"
	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"github.com/angelmondragon/healthtrack-backend/pkg/logger"
	"github.com/angelmondragon/healthtrack-backend/pkg/security"
)

const (
	signupMessage          = "User registered successfully"
	invalidTokenMessage    = "invalid token"
	missingTokenMessage    = "no auth token, access denied"
	invalidPasswordMessage = "invalid credentials"
)

// Service defines the behavior needed by the auth controllers and middleware.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, userID uint) error
	TokenCheck(ctx context.Context, token string) (bool, error)
	Authenticate(ctx context.Context, token string) (*Identity, error)
	Profile(ctx context.Context, identity Identity) (*ProfileResponse, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type userRepository interface {
	CreateWithToken(ctx context.Context, dto users.CreateUserDTO, mint users.TokenMinter) (*models.User, error)
	ExistsByPhone(ctx context.Context, phoneNo string) (bool, error)
	FindByPhone(ctx context.Context, phoneNo string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	UpdateToken(ctx context.Context, id uint, token string) error
	ClearToken(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

// SessionCache mirrors the current token per user outside the database.
type SessionCache interface {
	Remember(ctx context.Context, userID uint, token string) error
	Matches(ctx context.Context, userID uint, token string) (bool, error)
	Forget(ctx context.Context, userID uint) error
}

type service struct {
	users       userRepository
	sessions    SessionCache
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
	now         func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
// Sessions is optional.
type ServiceParams struct {
	UserRepo       userRepository
	Sessions       SessionCache
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
	Logger         *logger.Logger
	Now            func() time.Time
}

// NewService constructs the auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if strings.TrimSpace(params.JWTConfig.Secret) == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		users:       params.UserRepo,
		sessions:    params.Sessions,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
		logg:        logg,
		now:         now,
	}, nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	userName := strings.TrimSpace(req.UserName)
	phoneNo := strings.TrimSpace(req.PhoneNo)
	if userName == "" || phoneNo == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username, phoneno and password are required")
	}

	exists, err := s.users.ExistsByPhone(ctx, phoneNo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "user with this phone number already exists")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "password is too long")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.CreateWithToken(ctx, users.CreateUserDTO{
		UserName:     userName,
		PhoneNo:      phoneNo,
		PasswordHash: hash,
	}, func(u *models.User) (string, error) {
		return s.mint(u)
	})
	if err != nil {
		return nil, err
	}
	token := *user.JWTToken
	s.remember(ctx, user.ID, token)

	return &SignupResponse{
		Message: signupMessage,
		Token:   token,
		User:    users.FromModel(user),
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	phoneNo := strings.TrimSpace(req.Mobile)
	if phoneNo == "" || req.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mobile and password are required")
	}

	user, err := s.users.FindByPhone(ctx, phoneNo)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user with this phone number does not exist")
		}
		return nil, err
	}
	if !security.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidCredentials, invalidPasswordMessage)
	}

	token, err := s.mint(user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	if err := s.forget(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.users.UpdateToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	user.JWTToken = &token
	s.remember(ctx, user.ID, token)

	return &LoginResponse{Token: token, User: users.FromModel(user)}, nil
}

func (s *service) Logout(ctx context.Context, userID uint) error {
	if err := s.forget(ctx, userID); err != nil {
		return err
	}
	if err := s.users.ClearToken(ctx, userID); err != nil {
		return err
	}
	return s.forget(ctx, userID)
}

func (s *service) TokenCheck(ctx context.Context, token string) (bool, error) {
	if _, err := s.Authenticate(ctx, token); err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, missingTokenMessage)
	}

	claims, err := pkgAuth.ParseAccessToken(s.jwtCfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, invalidTokenMessage)
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, invalidTokenMessage)
	}
	identity := &Identity{UserID: userID, PhoneNo: claims.PhoneNo, Token: token}

	if s.sessions != nil {
		hit, err := s.sessions.Matches(ctx, userID, token)
		if err != nil {
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"user_id": userID, "error": err.Error()}), "session cache lookup failed; using database")
		} else if hit {
			return identity, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, invalidTokenMessage)
		}
		return nil, err
	}
	if !storesToken(user, token) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidTokenMessage)
	}
	return identity, nil
}

func (s *service) Profile(ctx context.Context, identity Identity) (*ProfileResponse, error) {
	user, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{User: users.FromModel(user), Token: identity.Token}, nil
}

func (s *service) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.forget(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	return s.forget(ctx, userID)
}

func (s *service) mint(user *models.User) (string, error) {
	return pkgAuth.MintAccessToken(s.jwtCfg, s.now(), pkgAuth.AccessTokenPayload{
		UserID:  user.ID,
		PhoneNo: user.PhoneNo,
	})
}

// remember is best effort: a missing cache entry only costs a database read.
// The entry is kept only if the users row still stores token once it has been
// written, so a login that lost a race to a newer one cannot leave its token
// cached.
func (s *service) remember(ctx context.Context, userID uint, token string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Remember(ctx, userID, token); err != nil {
		s.logg.Warn(s.logg.WithFields(ctx, map[string]any{"user_id": userID, "error": err.Error()}), "session cache write failed")
		return
	}
	user, err := s.users.FindByID(ctx, userID)
	if err == nil && storesToken(user, token) {
		return
	}
	if err := s.sessions.Forget(ctx, userID); err != nil {
		s.logg.Error(s.logg.WithFields(ctx, map[string]any{"user_id": userID}), "session cache could not drop superseded token", err)
	}
}

func storesToken(user *models.User, token string) bool {
	return user.HasSession() && subtle.ConstantTimeCompare([]byte(*user.JWTToken), []byte(token)) == 1
}

// forget must succeed before a token is replaced or revoked, otherwise the
// cache could keep accepting the old token.
func (s *service) forget(ctx context.Context, userID uint) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Forget(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session cache unavailable")
	}
	return nil
}
