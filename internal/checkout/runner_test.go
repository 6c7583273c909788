package checkout

import (
	"context"
	"testing"
	"time"

	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerStopsOnTerminalState(t *testing.T) {
	clk := newFakeClock()
	fake := &fakeGateway{mobileResult: mobileOK()}
	orch := testOrchestrator(fake, clk, false)

	orch.Submit(context.Background(), Submission{
		Name: "Tariro", Method: models.MethodEcocash,
		Phone: gateway.TestNumberInsufficient, Items: items(),
	})

	var transitions []State
	runner := NewRunner(orch, func(o *Orchestrator) {
		transitions = append(transitions, o.State())
	})

	done := make(chan struct{})
	go func() {
		runner.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("le runner aurait dû se terminer immédiatement")
	}

	require.NotEmpty(t, transitions)
	assert.Equal(t, StateResolvedFailure, transitions[len(transitions)-1])
}

func TestRunnerCancellationStopsPendingTick(t *testing.T) {
	clk := newFakeClock()
	// pending éternel : seul le démontage peut arrêter la boucle
	fake := &fakeGateway{mobileResult: mobileOK(), pollStatus: "Sent"}
	orch := testOrchestrator(fake, clk, true)

	orch.Submit(context.Background(), Submission{
		Name: "Tariro", Method: models.MethodEcocash, Phone: "0779123456", Items: items(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewRunner(orch, nil).Run(ctx)
		close(done)
	}()

	// laisser passer le premier tick, puis démonter
	time.Sleep(50 * time.Millisecond)
	calls := fake.pollCalls
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("l'annulation du contexte doit interrompre le tick planifié")
	}

	// aucun appel réseau orphelin après le démontage
	assert.Equal(t, calls, fake.pollCalls)
	assert.Equal(t, StatePolling, orch.State())
}
