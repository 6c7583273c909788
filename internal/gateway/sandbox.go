package gateway

import (
	"time"

	"savanna_back_end/internal/models"
)

// Numéros réservés de la sandbox de la passerelle. Hors production, ils servent
// de repli quand la requête ne porte pas de scénario explicite.
const (
	TestNumberSuccess      = "0771111111"
	TestNumberDelayed      = "0772222222"
	TestNumberCancelled    = "0773333333"
	TestNumberInsufficient = "0774444444"
)

// Seuils de bascule des scénarios simulés
const (
	successDelay = 5 * time.Second
	delayedDelay = 30 * time.Second
)

// ScenarioForPhone retourne le scénario simulé associé à un numéro réservé
func ScenarioForPhone(phone string) models.Scenario {
	switch phone {
	case TestNumberSuccess:
		return models.ScenarioSuccess
	case TestNumberDelayed:
		return models.ScenarioDelayed
	case TestNumberCancelled:
		return models.ScenarioCancelled
	case TestNumberInsufficient:
		return models.ScenarioInsufficient
	default:
		return models.ScenarioNone
	}
}

// Simulate déroule un scénario simulé de façon déterministe en fonction du
// temps écoulé depuis l'initiation du paiement.
func Simulate(scenario models.Scenario, elapsed time.Duration) (models.PaymentStatus, bool) {
	switch scenario {
	case models.ScenarioSuccess:
		if elapsed < successDelay {
			return models.PaymentStatus{Status: models.StatusPending}, true
		}
		return models.PaymentStatus{Status: models.StatusPaid}, true

	case models.ScenarioInsufficient:
		// échec immédiat, jamais de pending intermédiaire
		return models.PaymentStatus{Status: models.StatusFailed, Message: "Insufficient balance"}, true

	case models.ScenarioDelayed:
		if elapsed < delayedDelay {
			return models.PaymentStatus{Status: models.StatusPending}, true
		}
		return models.PaymentStatus{Status: models.StatusPaid}, true

	case models.ScenarioCancelled:
		if elapsed < delayedDelay {
			return models.PaymentStatus{Status: models.StatusPending}, true
		}
		return models.PaymentStatus{Status: models.StatusCancelled, Message: "Payment cancelled by customer"}, true
	}

	return models.PaymentStatus{}, false
}
