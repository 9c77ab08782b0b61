package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	authdomain "github.com/albertomonterom/vinkula-backend/internal/auth/domain"
	destdomain "github.com/albertomonterom/vinkula-backend/internal/destination/domain"
	destdto "github.com/albertomonterom/vinkula-backend/internal/destination/dto"
	"github.com/albertomonterom/vinkula-backend/internal/destination/repository"
	"github.com/albertomonterom/vinkula-backend/pkg/record"
	"github.com/albertomonterom/vinkula-backend/pkg/storage"
)

// DestinationUsecase is the destination write path plus the read
// operations the catalog exposes.
type DestinationUsecase interface {
	Create(ctx context.Context, principal authdomain.Principal, req *destdto.CreateDestinationRequest) (*destdomain.Destination, error)
	Edit(ctx context.Context, principal authdomain.Principal, idDestination string, req *destdto.EditDestinationRequest) ([]string, error)
	List(ctx context.Context) ([]destdomain.Destination, error)
	ListByProvider(ctx context.Context, idProvider string) ([]destdomain.Destination, error)
	Categories(ctx context.Context) ([]destdomain.Category, error)
}

type destinationUsecase struct {
	destRepo     repository.DestinationRepository
	categoryRepo repository.CategoryRepository
	objects      storage.ObjectStore
	now          func() time.Time
}

func NewDestinationUsecase(destRepo repository.DestinationRepository, categoryRepo repository.CategoryRepository, objects storage.ObjectStore) DestinationUsecase {
	return &destinationUsecase{
		destRepo:     destRepo,
		categoryRepo: categoryRepo,
		objects:      objects,
		now:          time.Now,
	}
}

// Create ingests the mandatory images and then writes the full record.
// Images go first so the record never references objects that failed to
// upload; a record-write failure after upload leaves orphaned objects
// rather than a dangling reference.
func (u *destinationUsecase) Create(ctx context.Context, principal authdomain.Principal, req *destdto.CreateDestinationRequest) (*destdomain.Destination, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("%w: latitude and longitude are required", destdomain.ErrInvalidInput)
	}
	if err := validateCoordinate("latitude", req.Latitude); err != nil {
		return nil, err
	}
	if err := validateCoordinate("longitude", req.Longitude); err != nil {
		return nil, err
	}
	if len(req.ImagesBase64) == 0 {
		return nil, fmt.Errorf("%w: at least one image is required", destdomain.ErrInvalidInput)
	}

	idProvider := req.IDProvider
	if idProvider == "" {
		idProvider = principal.ID
	}
	if idProvider != principal.ID {
		return nil, fmt.Errorf("%w: cannot create destinations for another provider", authdomain.ErrForbidden)
	}

	now := u.now()
	dest := &destdomain.Destination{
		ID:          fmt.Sprintf("DEST_%d", now.UnixMilli()),
		IDProvider:  idProvider,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		CreatedAt:   now,
	}

	urls, err := u.ingestImages(ctx, dest.ID, req.ImagesBase64)
	if err != nil {
		return nil, err
	}
	dest.ImageURLs = urls

	if err := u.destRepo.Create(ctx, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

// Edit loads the record for the ownership check, ingests replacement
// images when supplied, then applies the partial update built from the
// present fields. Returns the names of the updated fields.
func (u *destinationUsecase) Edit(ctx context.Context, principal authdomain.Principal, idDestination string, req *destdto.EditDestinationRequest) ([]string, error) {
	if idDestination == "" {
		return nil, fmt.Errorf("%w: missing destination ID", destdomain.ErrInvalidInput)
	}
	if err := validateCoordinate("latitude", req.Latitude); err != nil {
		return nil, err
	}
	if err := validateCoordinate("longitude", req.Longitude); err != nil {
		return nil, err
	}

	existing, err := u.destRepo.FindByID(ctx, idDestination)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, destdomain.ErrNotFound
	}
	if existing.IDProvider != principal.ID {
		return nil, fmt.Errorf("%w: destination belongs to another provider", authdomain.ErrForbidden)
	}

	var imageURLs []string
	if len(req.ImagesBase64) > 0 {
		imageURLs, err = u.ingestImages(ctx, idDestination, req.ImagesBase64)
		if err != nil {
			return nil, err
		}
	}

	var b record.UpdateBuilder
	if req.Name != nil {
		b.SetString("name", *req.Name)
	}
	if req.Description != nil {
		b.SetString("description", *req.Description)
	}
	if req.Address != nil {
		b.SetString("address", *req.Address)
	}
	if req.Latitude != nil {
		b.Set("latitude", record.Number(*req.Latitude))
	}
	if req.Longitude != nil {
		b.Set("longitude", record.Number(*req.Longitude))
	}
	if len(imageURLs) > 0 {
		b.SetStringList("imageUrls", imageURLs)
	}
	if req.Categories != nil {
		b.SetStringList("categories", *req.Categories)
	}

	cmd, err := b.Build()
	if err != nil {
		return nil, err
	}

	if _, err := u.destRepo.Update(ctx, idDestination, cmd); err != nil {
		return nil, err
	}
	return cmd.Fields, nil
}

func (u *destinationUsecase) List(ctx context.Context) ([]destdomain.Destination, error) {
	return u.destRepo.List(ctx)
}

func (u *destinationUsecase) ListByProvider(ctx context.Context, idProvider string) ([]destdomain.Destination, error) {
	if idProvider == "" {
		return nil, fmt.Errorf("%w: missing idProvider parameter", destdomain.ErrInvalidInput)
	}
	return u.destRepo.ListByProvider(ctx, idProvider)
}

func (u *destinationUsecase) Categories(ctx context.Context) ([]destdomain.Category, error) {
	return u.categoryRepo.List(ctx)
}

func validateCoordinate(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", destdomain.ErrInvalidInput, field)
	}
	return nil
}
