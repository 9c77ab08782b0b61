package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	authdto "github.com/albertomonterom/vinkula-backend/internal/auth/dto"
	"github.com/albertomonterom/vinkula-backend/internal/auth/repository"
	"github.com/albertomonterom/vinkula-backend/pkg/config"
	"github.com/albertomonterom/vinkula-backend/pkg/record"

	"github.com/golang-jwt/jwt/v5"
)

// AuthUsecase covers registration, login, profile editing and credential
// verification.
type AuthUsecase interface {
	Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(ctx context.Context, req *authdto.LoginRequest) (string, *authdomain.User, error)
	EditUser(ctx context.Context, principal authdomain.Principal, req *authdto.EditUserRequest) ([]string, map[string]string, error)
	ValidateToken(rawHeader string) (authdomain.Principal, error)
}

type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	now      func() time.Time
}

func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		now:      time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, authdomain.ErrEmailTaken
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := u.now()
	user := &authdomain.User{
		ID:        fmt.Sprintf("USR_%d", now.UnixMilli()),
		Name:      req.Name,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		Role:      authdomain.RoleUser,
		CreatedAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (string, *authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, authdomain.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", nil, authdomain.ErrInvalidCredentials
	}

	token, err := u.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EditUser applies the present fields of req to the principal's own record
// and reports which fields changed together with their new values. The
// role attribute is never part of the update.
func (u *authUsecase) EditUser(ctx context.Context, principal authdomain.Principal, req *authdto.EditUserRequest) ([]string, map[string]string, error) {
	if req.IDUser != nil && *req.IDUser != principal.ID {
		return nil, nil, fmt.Errorf("%w: cannot edit another user", authdomain.ErrForbidden)
	}
	if req.Email != nil && *req.Email != principal.Email {
		// email must stay unique across accounts
		existing, err := u.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, nil, err
		}
		if existing != nil && existing.ID != principal.ID {
			return nil, nil, authdomain.ErrEmailTaken
		}
	}

	var b record.UpdateBuilder
	if req.Name != nil {
		b.SetString("name", *req.Name)
	}
	if req.LastName != nil {
		b.SetString("lastName", *req.LastName)
	}
	if req.Email != nil {
		b.SetString("email", *req.Email)
	}
	if req.Password != nil {
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, nil, err
		}
		b.SetString("password", hashed)
	}
	if req.FavoriteCategories != nil {
		b.SetStringList("favoriteCategories", *req.FavoriteCategories)
	}

	cmd, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	updated, err := u.userRepo.Update(ctx, principal.ID, cmd)
	if err != nil {
		return nil, nil, err
	}
	return cmd.Fields, renderValues(updated), nil
}

func (u *authUsecase) generateToken(user *authdomain.User) (string, error) {
	now := u.now()
	claims := jwt.MapClaims{
		"idUser": user.ID,
		"email":  user.Email,
		"role":   user.Role,
		"exp":    now.Add(u.config.JWTExpiry).Unix(),
		"iat":    now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ValidateToken verifies the raw Authorization header value and decodes the
// principal. It is pure verification: no repository access, no side effects.
func (u *authUsecase) ValidateToken(rawHeader string) (authdomain.Principal, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(rawHeader, "Bearer "))
	if raw == "" {
		return authdomain.Principal{}, fmt.Errorf("%w: missing authorization token", authdomain.ErrUnauthenticated)
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return authdomain.Principal{}, fmt.Errorf("%w: invalid or expired token", authdomain.ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authdomain.Principal{}, fmt.Errorf("%w: invalid token claims", authdomain.ErrUnauthenticated)
	}

	id, _ := claims["idUser"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return authdomain.Principal{}, fmt.Errorf("%w: invalid token claims", authdomain.ErrUnauthenticated)
	}

	return authdomain.Principal{ID: id, Email: email, Role: role}, nil
}

// renderValues flattens the updated attributes for the response body,
// redacting the password hash.
func renderValues(item record.Item) map[string]string {
	out := make(map[string]string, len(item))
	for field, v := range item {
		if field == "password" {
			out[field] = "[redacted]"
			continue
		}
		switch v := v.(type) {
		case record.StringValue:
			out[field] = string(v)
		case record.NumberValue:
			out[field] = string(v)
		case record.StringListValue:
			out[field] = strings.Join(v, ",")
		}
	}
	return out
}
