package dto

import authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"lastName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EditUserRequest carries the optional profile fields. Pointer fields
// distinguish "absent" from "set to zero value". Role is deliberately not
// editable. IDUser is accepted for compatibility but must match the
// authenticated principal.
type EditUserRequest struct {
	IDUser             *string   `json:"idUser,omitempty"`
	Name               *string   `json:"name,omitempty"`
	LastName           *string   `json:"lastName,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Password           *string   `json:"password,omitempty"`
	FavoriteCategories *[]string `json:"favoriteCategories,omitempty"`
}

type RegisterResponse struct {
	Message string           `json:"message"`
	User    *authdomain.User `json:"user"`
}

type LoginResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *authdomain.User `json:"user"`
}

type EditUserResponse struct {
	Message       string            `json:"message"`
	IDUser        string            `json:"idUser"`
	UpdatedFields []string          `json:"updatedFields"`
	NewValues     map[string]string `json:"newValues"`
}
