package layouts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for layout persistence. A layout document is always
// written as a whole; there are no partial updates.
type Repository interface {
	Create(ctx context.Context, layout *Layout) error
	GetByID(ctx context.Context, id uuid.UUID) (*Layout, error)
	GetByVenueID(ctx context.Context, venueID uuid.UUID) ([]Layout, error)
	Save(ctx context.Context, layout *Layout) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new layout repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, layout *Layout) error {
	return r.db.WithContext(ctx).Create(layout).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Layout, error) {
	var layout Layout
	err := r.db.WithContext(ctx).First(&layout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *repository) GetByVenueID(ctx context.Context, venueID uuid.UUID) ([]Layout, error) {
	var layouts []Layout
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("updated_at DESC").
		Find(&layouts).Error
	return layouts, err
}

func (r *repository) Save(ctx context.Context, layout *Layout) error {
	return r.db.WithContext(ctx).Save(layout).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Layout{}, "id = ?", id).Error
}
