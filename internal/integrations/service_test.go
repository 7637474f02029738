package integrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/opsboard-backend/pkg/db/dbtest"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T, now time.Time) Service {
	t.Helper()
	svc, err := NewService(NewRepository(dbtest.Open(t)))
	require.NoError(t, err)
	svc.(*service).now = func() time.Time { return now }
	return svc
}

func TestCreateIntegrationDefaults(t *testing.T) {
	svc := newTestService(t, time.Now())

	created, err := svc.CreateIntegration(context.Background(), CreateIntegrationInput{
		Name:          "SAP Business One",
		Type:          "sap",
		Configuration: map[string]any{"companyDb": "ACEOL_ZA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "inactive", created.Status)
	assert.Equal(t, "pending", created.SyncStatus)
	assert.Nil(t, created.LastSyncDate)
	assert.Equal(t, "ACEOL_ZA", created.Configuration["companyDb"])

	list, err := svc.ListIntegrations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ACEOL_ZA", list[0].Configuration["companyDb"])
}

func TestUpdateIntegrationPatch(t *testing.T) {
	svc := newTestService(t, time.Now())
	ctx := context.Background()
	created, err := svc.CreateIntegration(ctx, CreateIntegrationInput{Name: "Odoo", Type: "odoo"})
	require.NoError(t, err)

	updated, err := svc.UpdateIntegration(ctx, created.ID, UpdateIntegrationInput{Status: ptr("active")})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, "Odoo", updated.Name)
	assert.Equal(t, "pending", updated.SyncStatus)

	_, err = svc.UpdateIntegration(ctx, 404, UpdateIntegrationInput{Name: ptr("x")})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSyncIntegrationStampsRecord(t *testing.T) {
	fixed := time.Date(2025, time.January, 12, 9, 30, 0, 0, time.UTC)
	svc := newTestService(t, fixed)
	ctx := context.Background()
	created, err := svc.CreateIntegration(ctx, CreateIntegrationInput{Name: "Kingdee", Type: "kingdee", SyncStatus: ptr("error")})
	require.NoError(t, err)

	result, err := svc.SyncIntegration(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, SyncMessage, result.Message)
	assert.Equal(t, "success", result.Integration.SyncStatus)
	require.NotNil(t, result.Integration.LastSyncDate)
	assert.True(t, result.Integration.LastSyncDate.Equal(fixed))

	_, err = svc.SyncIntegration(ctx, 777)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
