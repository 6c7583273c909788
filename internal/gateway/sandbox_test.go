package gateway

import (
	"testing"
	"time"

	"savanna_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioForPhone(t *testing.T) {
	assert.Equal(t, models.ScenarioSuccess, ScenarioForPhone(TestNumberSuccess))
	assert.Equal(t, models.ScenarioDelayed, ScenarioForPhone(TestNumberDelayed))
	assert.Equal(t, models.ScenarioCancelled, ScenarioForPhone(TestNumberCancelled))
	assert.Equal(t, models.ScenarioInsufficient, ScenarioForPhone(TestNumberInsufficient))
	assert.Equal(t, models.ScenarioNone, ScenarioForPhone("0779876543"))
	assert.Equal(t, models.ScenarioNone, ScenarioForPhone(""))
}

func TestSimulateSuccess(t *testing.T) {
	status, ok := Simulate(models.ScenarioSuccess, 2*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, status.Status)

	status, ok = Simulate(models.ScenarioSuccess, 4999*time.Millisecond)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, status.Status)

	status, ok = Simulate(models.ScenarioSuccess, 5*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, status.Status)
}

func TestSimulateInsufficientFailsImmediately(t *testing.T) {
	// jamais de pending intermédiaire, même à t=0
	status, ok := Simulate(models.ScenarioInsufficient, 0)
	require.True(t, ok)
	assert.Equal(t, models.StatusFailed, status.Status)
	assert.Equal(t, "Insufficient balance", status.Message)
}

func TestSimulateDelayed(t *testing.T) {
	status, ok := Simulate(models.ScenarioDelayed, 29*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, status.Status)

	status, ok = Simulate(models.ScenarioDelayed, 30*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusPaid, status.Status)
}

func TestSimulateCancelled(t *testing.T) {
	status, ok := Simulate(models.ScenarioCancelled, 10*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, status.Status)

	status, ok = Simulate(models.ScenarioCancelled, 31*time.Second)
	require.True(t, ok)
	assert.Equal(t, models.StatusCancelled, status.Status)
}

func TestSimulateUnknownScenario(t *testing.T) {
	_, ok := Simulate(models.ScenarioNone, time.Second)
	assert.False(t, ok)
}
