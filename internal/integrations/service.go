package integrations

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/angelmondragon/opsboard-backend/pkg/db"
	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
	"github.com/angelmondragon/opsboard-backend/pkg/enums"
)

// SyncMessage is returned with every successful sync.
const SyncMessage = "Sync completed successfully"

// Service manages ERP integration records. Sync only stamps the record; no
// external system is contacted.
type Service interface {
	ListIntegrations(ctx context.Context) ([]IntegrationDTO, error)
	CreateIntegration(ctx context.Context, input CreateIntegrationInput) (*IntegrationDTO, error)
	UpdateIntegration(ctx context.Context, id uint, input UpdateIntegrationInput) (*IntegrationDTO, error)
	SyncIntegration(ctx context.Context, id uint) (*SyncResultDTO, error)
}

type CreateIntegrationInput struct {
	Name          string         `json:"name" validate:"required,max=255"`
	Type          string         `json:"type" validate:"required,max=50,lowercase"`
	Status        *string        `json:"status" validate:"omitempty,oneof=active inactive error connecting"`
	APIEndpoint   *string        `json:"apiEndpoint" validate:"omitempty,url"`
	LastSyncDate  *time.Time     `json:"lastSyncDate"`
	SyncStatus    *string        `json:"syncStatus" validate:"omitempty,oneof=success error pending"`
	Configuration map[string]any `json:"configuration"`
}

type UpdateIntegrationInput struct {
	Name          *string         `json:"name" validate:"omitempty,min=1,max=255"`
	Type          *string         `json:"type" validate:"omitempty,min=1,max=50,lowercase"`
	Status        *string         `json:"status" validate:"omitempty,oneof=active inactive error connecting"`
	APIEndpoint   *string         `json:"apiEndpoint" validate:"omitempty,url"`
	LastSyncDate  *time.Time      `json:"lastSyncDate"`
	SyncStatus    *string         `json:"syncStatus" validate:"omitempty,oneof=success error pending"`
	Configuration *map[string]any `json:"configuration"`
}

type service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("integration repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

func (s *service) ListIntegrations(ctx context.Context) ([]IntegrationDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	out := make([]IntegrationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewIntegrationDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateIntegration(ctx context.Context, input CreateIntegrationInput) (*IntegrationDTO, error) {
	m := &models.ErpIntegration{
		Name:          input.Name,
		Type:          input.Type,
		Status:        enums.IntegrationStatusInactive,
		APIEndpoint:   input.APIEndpoint,
		LastSyncDate:  input.LastSyncDate,
		SyncStatus:    enums.SyncStatusPending,
		Configuration: datatypes.JSONMap(input.Configuration),
	}
	if input.Status != nil {
		m.Status = enums.IntegrationStatus(*input.Status)
	}
	if input.SyncStatus != nil {
		m.SyncStatus = enums.SyncStatus(*input.SyncStatus)
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	return NewIntegrationDTO(created), nil
}

func (s *service) UpdateIntegration(ctx context.Context, id uint, input UpdateIntegrationInput) (*IntegrationDTO, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	input.apply(m)
	saved, err := s.repo.Save(ctx, m)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	return NewIntegrationDTO(saved), nil
}

// SyncIntegration marks the integration as freshly and successfully synced.
func (s *service) SyncIntegration(ctx context.Context, id uint) (*SyncResultDTO, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	now := s.now().UTC()
	m.LastSyncDate = &now
	m.SyncStatus = enums.SyncStatusSuccess

	saved, err := s.repo.Save(ctx, m)
	if err != nil {
		return nil, db.Classify(err, "integration")
	}
	return &SyncResultDTO{Message: SyncMessage, Integration: NewIntegrationDTO(saved)}, nil
}

func (in UpdateIntegrationInput) apply(m *models.ErpIntegration) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Type != nil {
		m.Type = *in.Type
	}
	if in.Status != nil {
		m.Status = enums.IntegrationStatus(*in.Status)
	}
	if in.APIEndpoint != nil {
		m.APIEndpoint = in.APIEndpoint
	}
	if in.LastSyncDate != nil {
		m.LastSyncDate = in.LastSyncDate
	}
	if in.SyncStatus != nil {
		m.SyncStatus = enums.SyncStatus(*in.SyncStatus)
	}
	if in.Configuration != nil {
		m.Configuration = datatypes.JSONMap(*in.Configuration)
	}
}
