package repository

import (
	"context"

	destdomain "github.com/albertomonterom/vinkula-backend/internal/destination/domain"
	"github.com/albertomonterom/vinkula-backend/pkg/record"
)

// CategoryRepository reads the category catalog. Categories are maintained
// out of band; this service never writes them.
type CategoryRepository interface {
	List(ctx context.Context) ([]destdomain.Category, error)
}

type categoryRepository struct {
	store record.Store
	table string
}

func NewCategoryRepository(store record.Store, table string) CategoryRepository {
	return &categoryRepository{store: store, table: table}
}

func (r *categoryRepository) List(ctx context.Context) ([]destdomain.Category, error) {
	items, err := r.store.Scan(ctx, r.table, nil)
	if err != nil {
		return nil, err
	}
	categories := make([]destdomain.Category, 0, len(items))
	for _, item := range items {
		categories = append(categories, destdomain.Category{
			ID:   item.String("idCategory"),
			Name: item.String("name"),
		})
	}
	return categories, nil
}
