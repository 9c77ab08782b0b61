package delivery

import (
	"errors"
	"net/http"

	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	authdto "github.com/albertomonterom/vinkula-backend/internal/auth/dto"
	"github.com/albertomonterom/vinkula-backend/internal/auth/usecase"
	"github.com/albertomonterom/vinkula-backend/pkg/log"
	"github.com/albertomonterom/vinkula-backend/pkg/record"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.RegisterResponse{
		Message: "User registered successfully",
		User:    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing email or password"})
		return
	}

	token, user, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// EditMe updates the authenticated user's own profile. The identity always
// comes from the credential, never from the body.
func (h *AuthHandler) EditMe(c *gin.Context) {
	principal, ok := GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req authdto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updatedFields, newValues, err := h.authUsecase.EditUser(c.Request.Context(), principal, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.EditUserResponse{
		Message:       "User updated successfully",
		IDUser:        principal.ID,
		UpdatedFields: updatedFields,
		NewValues:     newValues,
	})
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, authdomain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, authdomain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, authdomain.ErrEmailTaken),
		errors.Is(err, authdomain.ErrInvalidInput),
		errors.Is(err, record.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.GetLogger().WithError(err).Error("auth request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
	}
}
