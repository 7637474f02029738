package integrations

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) Create(ctx context.Context, m *models.ErpIntegration) (*models.ErpIntegration, error) {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Repository) FindByID(ctx context.Context, id uint) (*models.ErpIntegration, error) {
	var m models.ErpIntegration
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns integrations in creation order.
func (r *Repository) List(ctx context.Context) ([]models.ErpIntegration, error) {
	var out []models.ErpIntegration
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *Repository) Save(ctx context.Context, m *models.ErpIntegration) (*models.ErpIntegration, error) {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}
