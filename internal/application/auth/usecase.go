package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frascos-bo/frascos/internal/application/dto"
	"github.com/frascos-bo/frascos/internal/domain"
	"github.com/frascos-bo/frascos/internal/domain/repository"
	"github.com/frascos-bo/frascos/pkg/jwt"
)

// JWTConfig secreto del proyecto y vigencia de los tokens emitidos en login.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase resuelve el propietario (owner) de la sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	if jwtCfg.TTL <= 0 {
		jwtCfg.TTL = time.Hour
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Resolve usa el token si existe; si no, email/password. Sin ninguno devuelve ErrNoOwner.
func (uc *AuthUseCase) Resolve(ctx context.Context, in dto.Credentials) (*dto.SessionResponse, error) {
	if in.AccessToken != "" {
		return uc.FromToken(in.AccessToken)
	}
	if in.Email != "" && in.Password != "" {
		return uc.Login(ctx, dto.LoginRequest{Email: in.Email, Password: in.Password})
	}
	return nil, domain.ErrNoOwner
}

// FromToken valida un access token de Supabase; sub es el id del propietario.
func (uc *AuthUseCase) FromToken(token string) (*dto.SessionResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: sub no es un uuid", domain.ErrInvalidInput)
	}
	out := &dto.SessionResponse{OwnerID: claims.Subject, Email: claims.Email}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		out.ExpiresAt = &exp
	}
	return out, nil
}

// Login verifica email/password contra auth.users y, si hay secreto configurado, emite un token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	now := uc.now()
	if !user.Active(now) {
		return nil, domain.ErrForbidden
	}

	out := &dto.SessionResponse{OwnerID: user.ID, Email: user.Email}
	if uc.jwtCfg.Secret != "" {
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
		if err != nil {
			return nil, err
		}
		exp := now.Add(uc.jwtCfg.TTL)
		out.Token = token
		out.ExpiresAt = &exp
	}
	return out, nil
}
