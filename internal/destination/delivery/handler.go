package delivery

import (
	"errors"
	"net/http"

	authdelivery "github.com/albertomonterom/vinkula-backend/internal/auth/delivery"
	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	destdomain "github.com/albertomonterom/vinkula-backend/internal/destination/domain"
	destdto "github.com/albertomonterom/vinkula-backend/internal/destination/dto"
	"github.com/albertomonterom/vinkula-backend/internal/destination/usecase"
	"github.com/albertomonterom/vinkula-backend/pkg/log"
	"github.com/albertomonterom/vinkula-backend/pkg/record"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	destUsecase usecase.DestinationUsecase
}

func NewDestinationHandler(destUsecase usecase.DestinationUsecase) *DestinationHandler {
	return &DestinationHandler{destUsecase: destUsecase}
}

func (h *DestinationHandler) Create(c *gin.Context) {
	principal, ok := authdelivery.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req destdto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	dest, err := h.destUsecase.Create(c.Request.Context(), principal, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destdto.CreateDestinationResponse{
		Message:       "Destination created successfully",
		IDDestination: dest.ID,
		ImageURLs:     dest.ImageURLs,
	})
}

func (h *DestinationHandler) Edit(c *gin.Context) {
	principal, ok := authdelivery.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
		return
	}

	var req destdto.EditDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	idDestination := c.Param("idDestination")
	updatedFields, err := h.destUsecase.Edit(c.Request.Context(), principal, idDestination, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destdto.EditDestinationResponse{
		Message:       "Destination updated successfully",
		IDDestination: idDestination,
		UpdatedFields: updatedFields,
	})
}

func (h *DestinationHandler) List(c *gin.Context) {
	destinations, err := h.destUsecase.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) ListByProvider(c *gin.Context) {
	destinations, err := h.destUsecase.ListByProvider(c.Request.Context(), c.Param("idProvider"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) ListCategories(c *gin.Context) {
	categories, err := h.destUsecase.Categories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *DestinationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, authdomain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, authdomain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, destdomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, destdomain.ErrInvalidInput),
		errors.Is(err, record.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.GetLogger().WithError(err).Error("destination request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error", "error": err.Error()})
	}
}
