package settings

import (
	"context"

	"github.com/dmoreira/workshop-backend/pkg/db/models"
	dbtypes "github.com/dmoreira/workshop-backend/pkg/db/types"
	"gorm.io/gorm"
)

// Repository persists setting rows keyed by name.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]models.Setting, error) {
	var rows []models.Setting
	err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *Repository) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	var row models.Setting
	if err := r.db.WithContext(ctx).First(&row, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) Create(ctx context.Context, setting *models.Setting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *Repository) UpdateValue(ctx context.Context, key string, value dbtypes.JSONValue) error {
	return r.db.WithContext(ctx).
		Model(&models.Setting{}).
		Where("key = ?", key).
		Update("value", value).
		Error
}
