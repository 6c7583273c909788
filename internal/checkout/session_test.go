package checkout

import (
	"context"
	"testing"
	"time"

	"savanna_back_end/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T, fake *fakeGateway) *Manager {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	resolver := NewResolver(fake, false)
	mgr := NewManager(fake, resolver, client)
	t.Cleanup(mgr.Close)
	return mgr
}

func TestStartExpressRejectsWebMethod(t *testing.T) {
	mgr := setupManager(t, &fakeGateway{})

	_, err := mgr.StartExpress(context.Background(), Submission{
		Name: "Tariro", Method: models.MethodWeb, Items: items(),
	})
	assert.Error(t, err)
}

func TestStartExpressInitiationFailure(t *testing.T) {
	fake := &fakeGateway{mobileResult: models.PaymentInitiationResult{Success: false, Error: "Invalid integration id"}}
	mgr := setupManager(t, fake)

	snap, err := mgr.StartExpress(context.Background(), Submission{
		Name: "Tariro", Method: models.MethodEcocash, Phone: "0779123456", Items: items(),
	})
	require.NoError(t, err)

	assert.Equal(t, StateResolvedFailure, snap.State)
	assert.Equal(t, "Invalid integration id", snap.Message)

	// le snapshot est relisible depuis Redis
	loaded, err := mgr.Get(context.Background(), snap.Reference)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, StateResolvedFailure, loaded.State)
}

func TestStartExpressRunsToResolution(t *testing.T) {
	fake := &fakeGateway{mobileResult: mobileOK()}
	mgr := setupManager(t, fake)

	// scénario insuffisant : résolution immédiate au premier tick du runner
	snap, err := mgr.StartExpress(context.Background(), Submission{
		Name: "Tariro", Method: models.MethodEcocash, Phone: "0779123456",
		Items: items(), Scenario: models.ScenarioInsufficient,
	})
	require.NoError(t, err)
	assert.Equal(t, StatePolling, snap.State)
	assert.False(t, snap.Done)
	assert.Equal(t, "Confirm the payment on your phone", snap.Instructions)

	require.Eventually(t, func() bool {
		loaded, err := mgr.Get(context.Background(), snap.Reference)
		return err == nil && loaded != nil && loaded.State == StateResolvedFailure
	}, 2*time.Second, 20*time.Millisecond)

	loaded, err := mgr.Get(context.Background(), snap.Reference)
	require.NoError(t, err)
	assert.True(t, loaded.Done)
	assert.Equal(t, "Insufficient balance", loaded.Message)
}

func TestGetUnknownSessionReturnsNil(t *testing.T) {
	mgr := setupManager(t, &fakeGateway{})

	snap, err := mgr.Get(context.Background(), "inconnue")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
