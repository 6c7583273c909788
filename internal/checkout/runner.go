package checkout

import (
	"context"
	"time"
)

// Runner est l'ordonnanceur du poll : il pilote Tick sur un timer et possède
// l'annulation. Démonter le runner (annuler le contexte) annule le tick en
// attente — aucune navigation fantôme ni appel réseau orphelin.
type Runner struct {
	orch     *Orchestrator
	onChange func(*Orchestrator)
}

func NewRunner(orch *Orchestrator, onChange func(*Orchestrator)) *Runner {
	if onChange == nil {
		onChange = func(*Orchestrator) {}
	}
	return &Runner{orch: orch, onChange: onChange}
}

// Run déroule la boucle de polling jusqu'à résolution terminale, timeout ou
// annulation du contexte. Strictement séquentiel : un seul poll en vol,
// le tick suivant n'est planifié qu'après la réponse du précédent.
func (r *Runner) Run(ctx context.Context) {
	for {
		delay, done := r.orch.Tick(ctx)
		r.onChange(r.orch)
		if done {
			return
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
