package checkout

import (
	"context"
	"time"

	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/models"
)

// Clock permet de piloter le temps dans les tests
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock est l'horloge réelle
var SystemClock Clock = realClock{}

// Resolver détermine le statut courant d'un paiement mobile : scénario simulé
// hors production, sinon poll réel de la passerelle avec normalisation.
type Resolver struct {
	Client     gateway.Client
	Clock      Clock
	Production bool
}

func NewResolver(client gateway.Client, production bool) *Resolver {
	return &Resolver{Client: client, Clock: SystemClock, Production: production}
}

// Resolve retourne le statut courant pour un PollState donné.
// L'erreur n'est non-nil que si l'interrogation de la passerelle elle-même
// échoue (erreur transport) — c'est à l'appelant de l'emballer.
func (r *Resolver) Resolve(ctx context.Context, st models.PollState) (models.PaymentStatus, error) {
	if !r.Production {
		scenario := st.Scenario
		if scenario == models.ScenarioNone {
			scenario = gateway.ScenarioForPhone(st.Phone)
		}
		if scenario != models.ScenarioNone {
			elapsed := time.Duration(r.Clock.Now().UnixMilli()-st.StartTime) * time.Millisecond
			if status, ok := gateway.Simulate(scenario, elapsed); ok {
				return status, nil
			}
		}
	}

	raw, err := r.Client.PollStatus(ctx, st.PollURL)
	if err != nil {
		return models.PaymentStatus{}, err
	}
	return models.PaymentStatus{Status: gateway.NormalizeStatus(raw)}, nil
}
