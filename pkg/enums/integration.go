package enums

import "fmt"

// IntegrationStatus is the connection state of an ERP integration.
type IntegrationStatus string

const (
	IntegrationStatusActive     IntegrationStatus = "active"
	IntegrationStatusInactive   IntegrationStatus = "inactive"
	IntegrationStatusError      IntegrationStatus = "error"
	IntegrationStatusConnecting IntegrationStatus = "connecting"
)

var validIntegrationStatuses = []IntegrationStatus{
	IntegrationStatusActive,
	IntegrationStatusInactive,
	IntegrationStatusError,
	IntegrationStatusConnecting,
}

func (s IntegrationStatus) String() string {
	return string(s)
}

func (s IntegrationStatus) IsValid() bool {
	for _, candidate := range validIntegrationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseIntegrationStatus(value string) (IntegrationStatus, error) {
	for _, candidate := range validIntegrationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid integration status %q", value)
}

// SyncStatus is the outcome of the most recent sync attempt.
type SyncStatus string

const (
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusError   SyncStatus = "error"
	SyncStatusPending SyncStatus = "pending"
)

var validSyncStatuses = []SyncStatus{
	SyncStatusSuccess,
	SyncStatusError,
	SyncStatusPending,
}

func (s SyncStatus) String() string {
	return string(s)
}

func (s SyncStatus) IsValid() bool {
	for _, candidate := range validSyncStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func ParseSyncStatus(value string) (SyncStatus, error) {
	for _, candidate := range validSyncStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sync status %q", value)
}
