package gateway

import (
	"context"
	"math"
	"strings"

	"savanna_back_end/internal/models"
)

// Client expose exactement les trois opérations dont le checkout dépend.
// L'implémentation réelle parle à la passerelle hébergée ; les tests utilisent
// un faux client scripté.
type Client interface {
	// CreateWebPayment crée un paiement par redirection (carte/banque)
	CreateWebPayment(ctx context.Context, items []models.CartItem, email string) models.PaymentInitiationResult

	// CreateMobilePayment crée un paiement mobile money express (ecocash/onemoney)
	CreateMobilePayment(ctx context.Context, items []models.CartItem, email, phone, method string) models.PaymentInitiationResult

	// PollStatus interroge l'URL de poll et retourne le statut brut de la passerelle
	PollStatus(ctx context.Context, pollURL string) (string, error)
}

// ToCents convertit un prix décimal en centimes.
// L'arrondi se fait par article AVANT multiplication par la quantité —
// reproduire exactement cet ordre pour éviter toute dérive d'arrondi.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// LineCents retourne le montant d'une ligne en centimes (arrondi puis quantité)
func LineCents(item models.CartItem) int64 {
	return ToCents(item.Price) * int64(item.Quantity)
}

// TotalCents retourne le montant total du panier en centimes
func TotalCents(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += LineCents(it)
	}
	return total
}

// IsPaid applique le prédicat "payé" sur un statut brut de la passerelle
func IsPaid(rawStatus string) bool {
	switch normalize(rawStatus) {
	case "paid", "complete", "confirmed":
		return true
	}
	return false
}

// NormalizeStatus ramène un statut brut de la passerelle sur les statuts internes
func NormalizeStatus(rawStatus string) string {
	s := normalize(rawStatus)
	switch {
	case IsPaid(rawStatus):
		return models.StatusPaid
	case s == "cancelled" || s == "canceled":
		return models.StatusCancelled
	case s == "created" || s == "sent" || s == "pending" || s == "awaiting delivery":
		return models.StatusPending
	default:
		return models.StatusFailed
	}
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ResolveMethod ramène l'alias générique "mobile" sur la méthode express par défaut
func ResolveMethod(method string) string {
	if method == models.MethodMobile {
		return models.MethodEcocash
	}
	return method
}
