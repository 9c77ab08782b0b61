package repository

import (
	"context"
	"errors"
	"time"

	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	"github.com/albertomonterom/vinkula-backend/pkg/record"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository persists users in the record store.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	Update(ctx context.Context, id string, cmd record.UpdateCommand) (record.Item, error)
}

type userRepository struct {
	store record.Store
	table string
}

func NewUserRepository(store record.Store, table string) UserRepository {
	return &userRepository{store: store, table: table}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	item := record.Item{
		"idUser":    record.StringValue(user.ID),
		"name":      record.StringValue(user.Name),
		"lastName":  record.StringValue(user.LastName),
		"email":     record.StringValue(user.Email),
		"password":  record.StringValue(user.Password),
		"role":      record.StringValue(user.Role),
		"createdAt": record.StringValue(user.CreatedAt.UTC().Format(time.RFC3339)),
	}
	return r.store.PutRecord(ctx, r.table, item)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	item, err := r.store.FindByField(ctx, r.table, "email", email)
	if err != nil {
		if errors.Is(err, record.ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userFromItem(item), nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	item, err := r.store.GetRecord(ctx, r.table, record.Key{Field: "idUser", Value: id})
	if err != nil {
		if errors.Is(err, record.ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userFromItem(item), nil
}

func (r *userRepository) Update(ctx context.Context, id string, cmd record.UpdateCommand) (record.Item, error) {
	return r.store.UpdateRecord(ctx, r.table, record.Key{Field: "idUser", Value: id}, cmd)
}

func userFromItem(item record.Item) *authdomain.User {
	createdAt, _ := time.Parse(time.RFC3339, item.String("createdAt"))
	return &authdomain.User{
		ID:                 item.String("idUser"),
		Name:               item.String("name"),
		LastName:           item.String("lastName"),
		Email:              item.String("email"),
		Password:           item.String("password"),
		Role:               item.String("role"),
		FavoriteCategories: item.StringList("favoriteCategories"),
		CreatedAt:          createdAt,
	}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
