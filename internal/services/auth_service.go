package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/models"
	"github.com/safekids/app-safekids/internal/observability"
	"github.com/safekids/app-safekids/internal/repository"
	"github.com/safekids/app-safekids/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// AuthService signs console users in and manages their accounts
type AuthService struct {
	usuarios   repository.Store[models.Usuario]
	secret     []byte
	issuer     string
	ttl        time.Duration
	bcryptCost int
	now        func() time.Time
	logger     *logging.SafeLogger
}

// AuthOptions configures session tokens
type AuthOptions struct {
	Secret     string
	Issuer     string
	TTL        time.Duration
	BcryptCost int
	Now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(usuarios repository.Store[models.Usuario], opts AuthOptions) *AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{
		usuarios:   usuarios,
		secret:     []byte(opts.Secret),
		issuer:     opts.Issuer,
		ttl:        opts.TTL,
		bcryptCost: opts.BcryptCost,
		now:        opts.Now,
		logger:     logging.Logger.Named("auth_service"),
	}
}

// AuthServiceInstance is the global auth service
var AuthServiceInstance *AuthService

// SignIn checks credentials and returns a signed session token
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	usuario, err := s.usuarios.FindBy(ctx, "email", normalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			observability.LoginAttempts.WithLabelValues("unknown_user").Inc()
			return nil, models.ErrInvalidCredentials
		}
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)); err != nil {
		observability.LoginAttempts.WithLabelValues("wrong_password").Inc()
		s.logger.Info("sign-in rejected", zap.String("uid", usuario.ID))
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issue(usuario)
	if err != nil {
		observability.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	observability.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info("user signed in", zap.String("uid", usuario.ID), zap.String("tipo", string(usuario.Tipo)))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		User:      usuario.ToResponse(),
	}, nil
}

func (s *AuthService) issue(usuario *models.Usuario) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: usuario.Email,
		Nome:  usuario.Nome,
		Tipo:  usuario.Tipo,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies a session token and returns its claims
func (s *AuthService) ParseToken(tokenString string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidToken, err)
	}
	if claims.Subject == "" || !claims.Tipo.Valid() {
		return nil, models.ErrInvalidToken
	}
	return claims, nil
}

// CurrentUser returns the account of uid
func (s *AuthService) CurrentUser(ctx context.Context, uid string) (*models.Usuario, error) {
	usuario, err := s.usuarios.Get(ctx, uid)
	if err != nil {
		return nil, notFound("usuário", uid, err)
	}
	return usuario, nil
}

// CreateUser creates a console account
func (s *AuthService) CreateUser(ctx context.Context, email, password, nome string, tipo models.TipoUsuario) (*models.Usuario, error) {
	email = normalizeEmail(email)
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("email inválido: %s", email)
	}
	if !tipo.Valid() {
		return nil, models.ErrInvalidTipo
	}
	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Email:        email,
		Tipo:         tipo,
		Nome:         strings.TrimSpace(nome),
		PasswordHash: hash,
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create usuario: %w", err)
	}

	s.logger.Info("user created", zap.String("uid", usuario.ID), zap.String("tipo", string(tipo)))
	return usuario, nil
}

// ChangePassword replaces the password of the account with email
func (s *AuthService) ChangePassword(ctx context.Context, email, password string) error {
	usuario, err := s.usuarios.FindBy(ctx, "email", normalizeEmail(email))
	if err != nil {
		return notFound("usuário", email, err)
	}
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	if _, err := s.usuarios.Update(ctx, usuario.ID, bson.M{"passwordHash": hash}); err != nil {
		return err
	}
	s.logger.Info("password changed", zap.String("uid", usuario.ID))
	return nil
}

func (s *AuthService) hash(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", models.ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
