package integrations

import (
	"time"

	"github.com/angelmondragon/opsboard-backend/pkg/db/models"
)

type IntegrationDTO struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	APIEndpoint   *string        `json:"apiEndpoint"`
	LastSyncDate  *time.Time     `json:"lastSyncDate"`
	SyncStatus    string         `json:"syncStatus"`
	Configuration map[string]any `json:"configuration"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// SyncResultDTO is returned by the sync action.
type SyncResultDTO struct {
	Message     string          `json:"message"`
	Integration *IntegrationDTO `json:"integration"`
}

func NewIntegrationDTO(m *models.ErpIntegration) *IntegrationDTO {
	if m == nil {
		return nil
	}
	return &IntegrationDTO{
		ID:            m.ID,
		Name:          m.Name,
		Type:          m.Type,
		Status:        m.Status.String(),
		APIEndpoint:   m.APIEndpoint,
		LastSyncDate:  m.LastSyncDate,
		SyncStatus:    m.SyncStatus.String(),
		Configuration: m.Configuration,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
