package repository

import (
	"context"
	"errors"
	"time"

	destdomain "github.com/albertomonterom/vinkula-backend/internal/destination/domain"
	"github.com/albertomonterom/vinkula-backend/pkg/record"
)

// DestinationRepository persists destinations in the record store.
type DestinationRepository interface {
	Create(ctx context.Context, dest *destdomain.Destination) error
	Update(ctx context.Context, id string, cmd record.UpdateCommand) (record.Item, error)
	FindByID(ctx context.Context, id string) (*destdomain.Destination, error)
	List(ctx context.Context) ([]destdomain.Destination, error)
	ListByProvider(ctx context.Context, idProvider string) ([]destdomain.Destination, error)
}

type destinationRepository struct {
	store record.Store
	table string
}

func NewDestinationRepository(store record.Store, table string) DestinationRepository {
	return &destinationRepository{store: store, table: table}
}

func (r *destinationRepository) Create(ctx context.Context, dest *destdomain.Destination) error {
	item := record.Item{
		"idDestination": record.StringValue(dest.ID),
		"idProvider":    record.StringValue(dest.IDProvider),
		"name":          record.StringValue(dest.Name),
		"description":   record.StringValue(dest.Description),
		"address":       record.StringValue(dest.Address),
		"latitude":      record.Number(dest.Latitude),
		"longitude":     record.Number(dest.Longitude),
		"imageUrls":     record.StringListValue(dest.ImageURLs),
		"createdAt":     record.StringValue(dest.CreatedAt.UTC().Format(time.RFC3339)),
	}
	if dest.Categories != nil {
		item["categories"] = record.StringListValue(dest.Categories)
	}
	return r.store.PutRecord(ctx, r.table, item)
}

func (r *destinationRepository) Update(ctx context.Context, id string, cmd record.UpdateCommand) (record.Item, error) {
	return r.store.UpdateRecord(ctx, r.table, record.Key{Field: "idDestination", Value: id}, cmd)
}

func (r *destinationRepository) FindByID(ctx context.Context, id string) (*destdomain.Destination, error) {
	item, err := r.store.GetRecord(ctx, r.table, record.Key{Field: "idDestination", Value: id})
	if err != nil {
		if errors.Is(err, record.ErrItemNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dest := destinationFromItem(item)
	return &dest, nil
}

func (r *destinationRepository) List(ctx context.Context) ([]destdomain.Destination, error) {
	return r.scan(ctx, nil)
}

func (r *destinationRepository) ListByProvider(ctx context.Context, idProvider string) ([]destdomain.Destination, error) {
	return r.scan(ctx, &record.FieldFilter{Field: "idProvider", Value: idProvider})
}

func (r *destinationRepository) scan(ctx context.Context, filter *record.FieldFilter) ([]destdomain.Destination, error) {
	items, err := r.store.Scan(ctx, r.table, filter)
	if err != nil {
		return nil, err
	}
	destinations := make([]destdomain.Destination, 0, len(items))
	for _, item := range items {
		destinations = append(destinations, destinationFromItem(item))
	}
	return destinations, nil
}

func destinationFromItem(item record.Item) destdomain.Destination {
	createdAt, _ := time.Parse(time.RFC3339, item.String("createdAt"))
	return destdomain.Destination{
		ID:          item.String("idDestination"),
		IDProvider:  item.String("idProvider"),
		Name:        item.String("name"),
		Description: item.String("description"),
		Address:     item.String("address"),
		Latitude:    item.Float("latitude"),
		Longitude:   item.Float("longitude"),
		ImageURLs:   item.StringList("imageUrls"),
		Categories:  item.StringList("categories"),
		CreatedAt:   createdAt,
	}
}
