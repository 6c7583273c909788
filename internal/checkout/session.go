package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"savanna_back_end/internal/gateway"
	"savanna_back_end/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Les sessions express expirent une fois le paiement résolu ou abandonné
const sessionTTL = 30 * time.Minute

// Snapshot est l'état observable d'une session express, réécrit dans Redis
// après chaque transition de la machine.
type Snapshot struct {
	Reference    string               `json:"reference"`
	State        State                `json:"state"`
	Done         bool                 `json:"done"` // résolution terminale atteinte
	Status       models.PaymentStatus `json:"status"`
	Message      string               `json:"message,omitempty"`
	Instructions string               `json:"instructions,omitempty"`
	UpdatedAt    int64                `json:"updated_at"`
}

// Manager orchestre les sessions de checkout express côté serveur : il crée
// l'orchestrateur, lance le runner et persiste les snapshots.
type Manager struct {
	client   gateway.Client
	resolver *Resolver
	clock    Clock
	rdb      *redis.Client

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

func NewManager(client gateway.Client, resolver *Resolver, rdb *redis.Client) *Manager {
	return &Manager{
		client:   client,
		resolver: resolver,
		clock:    SystemClock,
		rdb:      rdb,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// StartExpress soumet un paiement mobile et, s'il part en polling, lance un
// runner en arrière-plan qui suit la transaction jusqu'à résolution.
func (m *Manager) StartExpress(ctx context.Context, sub Submission) (*Snapshot, error) {
	if sub.Method == models.MethodWeb {
		return nil, errors.New("le checkout express est réservé au mobile money")
	}

	orch := NewOrchestrator(m.client, m.resolver, m.clock)
	reference := uuid.NewString()

	state := orch.Submit(ctx, sub)
	snap := m.save(reference, orch)

	if state != StatePolling {
		return snap, nil
	}

	// Le runner survit à la requête HTTP ; Close() annule tout tick en attente
	runCtx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.cancels[reference] = cancel
	m.mu.Unlock()

	go func() {
		defer m.forget(reference)
		runner := NewRunner(orch, func(o *Orchestrator) {
			m.save(reference, o)
		})
		runner.Run(runCtx)
		log.Printf("📱 Session express %s terminée : %s", reference, orch.State())
	}()

	return snap, nil
}

// Get retourne le snapshot courant d'une session (nil si inconnue)
func (m *Manager) Get(ctx context.Context, reference string) (*Snapshot, error) {
	data, err := m.rdb.Get(ctx, sessionKey(reference)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Close annule tous les runners encore actifs (arrêt du serveur)
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ref, cancel := range m.cancels {
		cancel()
		delete(m.cancels, ref)
	}
}

func (m *Manager) save(reference string, orch *Orchestrator) *Snapshot {
	snap := &Snapshot{
		Reference:    reference,
		State:        orch.State(),
		Done:         orch.Terminal(),
		Status:       orch.Status(),
		Message:      orch.Message(),
		Instructions: orch.Result().Instructions,
		UpdatedAt:    m.clock.Now().UnixMilli(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("❌ Erreur sérialisation session %s: %v", reference, err)
		return snap
	}
	if err := m.rdb.Set(context.Background(), sessionKey(reference), data, sessionTTL).Err(); err != nil {
		log.Printf("⚠️ Erreur sauvegarde session %s: %v", reference, err)
	}
	return snap
}

func (m *Manager) forget(reference string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cancel, ok := m.cancels[reference]; ok {
		cancel()
		delete(m.cancels, reference)
	}
}

func sessionKey(reference string) string {
	return "checkout:" + reference
}
