package models

// Méthodes de paiement acceptées au checkout
const (
	MethodWeb      = "web"
	MethodEcocash  = "ecocash"
	MethodOneMoney = "onemoney"
	MethodMobile   = "mobile" // alias générique, résolu en ecocash
)

// Statuts normalisés d'une transaction
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

// Scénarios simulés hors production
type Scenario string

const (
	ScenarioNone         Scenario = ""
	ScenarioSuccess      Scenario = "success"
	ScenarioInsufficient Scenario = "insufficient"
	ScenarioDelayed      Scenario = "delayed"
	ScenarioCancelled    Scenario = "cancelled"
)

// PaymentRequest est construit une fois par soumission du checkout,
// immuable après envoi vers la passerelle.
type PaymentRequest struct {
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	Method   string     `json:"paymentMethod"`
	Items    []CartItem `json:"items"`
	Scenario Scenario   `json:"scenario,omitempty"`
}

// PaymentInitiationResult est consommé immédiatement : redirection navigateur
// (web) ou démarrage du polling (mobile money).
type PaymentInitiationResult struct {
	Success      bool   `json:"success"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
	PollURL      string `json:"pollUrl,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Error        string `json:"error,omitempty"`
}

// PollState est créé à l'initiation d'un paiement mobile, relu à chaque tick,
// abandonné sur résolution terminale ou timeout.
type PollState struct {
	PollURL   string   `json:"pollUrl"`
	Phone     string   `json:"phone,omitempty"`
	Scenario  Scenario `json:"scenario,omitempty"`
	StartTime int64    `json:"startTime"` // epoch millisecondes
}

// PaymentStatus est recalculé à chaque réponse de poll, jamais persisté.
type PaymentStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	Countdown int    `json:"countdown,omitempty"` // secondes restantes avant timeout
}
