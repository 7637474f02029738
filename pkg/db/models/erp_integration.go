package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/angelmondragon/opsboard-backend/pkg/enums"
)

// ErpIntegration records a configured ERP connector. Nothing here talks to a real ERP.
type ErpIntegration struct {
	ID            uint                    `gorm:"primaryKey;autoIncrement"`
	Name          string                  `gorm:"column:name;size:255;not null"`
	Type          string                  `gorm:"column:type;size:50;not null"`
	Status        enums.IntegrationStatus `gorm:"column:status;size:20;not null"`
	APIEndpoint   *string                 `gorm:"column:api_endpoint"`
	LastSyncDate  *time.Time              `gorm:"column:last_sync_date"`
	SyncStatus    enums.SyncStatus        `gorm:"column:sync_status;size:20;not null"`
	Configuration datatypes.JSONMap       `gorm:"column:configuration;type:jsonb"`
	CreatedAt     time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Product{},
		&Inventory{},
		&Customer{},
		&Order{},
		&OrderItem{},
		&ErpIntegration{},
	}
}
