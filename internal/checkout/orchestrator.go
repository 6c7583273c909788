package checkout

import (
	"context"
	"time"

	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/models"
)

// États de la machine du checkout :
// idle → validating → submitting → (redirect_pending | polling)
//      → (resolved_success | resolved_failure | timed_out)
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateSubmitting      State = "submitting"
	StateRedirectPending State = "redirect_pending"
	StatePolling         State = "polling"
	StateResolvedSuccess State = "resolved_success"
	StateResolvedFailure State = "resolved_failure"
	StateTimedOut        State = "timed_out"
)

const (
	// Budget total du polling, évalué en secondes entières écoulées
	pollBudgetSeconds = 60
	// Délai fixe entre deux ticks
	PollInterval = 5 * time.Second
	// Délai d'affichage avant navigation vers la page de succès
	DisplayDelay = 2 * time.Second
)

// Messages terminaux du polling
const (
	msgTimedOut    = "Payment timed out after 1 minute"
	msgPollFailed  = "Failed to check payment status"
	msgGenericFail = "Payment failed"
)

// Submission est l'entrée du checkout, construite une fois par soumission
type Submission struct {
	Name     string
	Email    string
	Phone    string
	Method   string
	Items    []models.CartItem
	Scenario models.Scenario
}

// Validate applique les règles de validation champ par champ :
// nom toujours requis, téléphone requis sauf pour le paiement web
// (l'e-mail est pré-rempli depuis la configuration, jamais saisi).
func Validate(sub Submission) map[string]string {
	errs := map[string]string{}
	if sub.Name == "" {
		errs["name"] = "Name is required"
	}
	if sub.Method != models.MethodWeb && sub.Phone == "" {
		errs["phone"] = "Phone number required for mobile payments"
	}
	return errs
}

// Orchestrator est la machine à états du checkout. Elle est une valeur
// reprenable : Submit fait avancer jusqu'à redirect_pending ou polling,
// puis chaque Tick consomme une réponse de statut. L'ordonnanceur externe
// (Runner) possède le timer et son annulation.
type Orchestrator struct {
	client   gateway.Client
	resolver *Resolver
	clock    Clock

	state       State
	fieldErrors map[string]string
	result      models.PaymentInitiationResult
	poll        models.PollState
	status      models.PaymentStatus
	message     string
}

func NewOrchestrator(client gateway.Client, resolver *Resolver, clock Clock) *Orchestrator {
	if clock == nil {
		clock = SystemClock
	}
	return &Orchestrator{
		client:   client,
		resolver: resolver,
		clock:    clock,
		state:    StateIdle,
	}
}

func (o *Orchestrator) State() State                           { return o.state }
func (o *Orchestrator) FieldErrors() map[string]string         { return o.fieldErrors }
func (o *Orchestrator) Result() models.PaymentInitiationResult { return o.result }
func (o *Orchestrator) Status() models.PaymentStatus           { return o.status }
func (o *Orchestrator) Message() string                        { return o.message }
func (o *Orchestrator) PollState() models.PollState            { return o.poll }

// Terminal indique si la machine a atteint un état final de résolution
func (o *Orchestrator) Terminal() bool {
	switch o.state {
	case StateResolvedSuccess, StateResolvedFailure, StateTimedOut:
		return true
	}
	return false
}

// Submit valide la soumission puis initie le paiement.
// Invalide → retour à idle avec les erreurs par champ.
// Web → redirect_pending (terminal ici, l'appelant navigue).
// Mobile → polling, avec capture du PollState.
func (o *Orchestrator) Submit(ctx context.Context, sub Submission) State {
	o.state = StateValidating
	if errs := Validate(sub); len(errs) > 0 {
		o.fieldErrors = errs
		o.state = StateIdle
		return o.state
	}
	o.fieldErrors = nil

	o.state = StateSubmitting
	if sub.Method == models.MethodWeb {
		o.result = o.client.CreateWebPayment(ctx, sub.Items, sub.Email)
	} else {
		o.result = o.client.CreateMobilePayment(ctx, sub.Items, sub.Email, sub.Phone, gateway.ResolveMethod(sub.Method))
	}

	if !o.result.Success {
		o.message = o.result.Error
		if o.message == "" {
			o.message = msgGenericFail
		}
		o.state = StateResolvedFailure
		return o.state
	}

	if sub.Method == models.MethodWeb {
		o.state = StateRedirectPending
		return o.state
	}

	o.poll = models.PollState{
		PollURL:   o.result.PollURL,
		Phone:     sub.Phone,
		Scenario:  sub.Scenario,
		StartTime: o.clock.Now().UnixMilli(),
	}
	o.state = StatePolling
	return o.state
}

// Tick consomme une réponse de statut et retourne le délai avant le prochain
// tick. done=true signifie qu'aucun tick supplémentaire ne doit être planifié.
// Pas de retry sur erreur de poll : échec direct, choix de simplicité assumé.
func (o *Orchestrator) Tick(ctx context.Context) (next time.Duration, done bool) {
	if o.state != StatePolling {
		return 0, true
	}

	status, err := o.resolver.Resolve(ctx, o.poll)
	if err != nil {
		o.message = msgPollFailed
		o.state = StateResolvedFailure
		return 0, true
	}

	switch status.Status {
	case models.StatusPending:
		elapsed := o.clock.Now().UnixMilli() - o.poll.StartTime
		remaining := pollBudgetSeconds - int(elapsed/1000)
		if remaining <= 0 {
			o.status = models.PaymentStatus{Status: models.StatusPending}
			o.message = msgTimedOut
			o.state = StateTimedOut
			return 0, true
		}
		status.Countdown = remaining
		o.status = status
		return PollInterval, false

	case models.StatusPaid:
		o.status = status
		o.state = StateResolvedSuccess
		// l'appelant attend encore DisplayDelay avant de naviguer
		return DisplayDelay, true

	default:
		// cancelled, failed ou statut inconnu
		o.status = status
		o.message = status.Message
		if o.message == "" {
			o.message = msgGenericFail
		}
		o.state = StateResolvedFailure
		return 0, true
	}
}
