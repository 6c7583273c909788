package cart

import "savanna_back_end/internal/models"

// Le panier est manipulé uniquement par des réducteurs purs : chaque opération
// retourne un nouveau snapshot, l'ancien n'est jamais muté en place.

// Add ajoute un article au panier, ou augmente sa quantité s'il y est déjà
func Add(items []models.CartItem, item models.CartItem) []models.CartItem {
	out := snapshot(items)
	for i := range out {
		if out[i].ProductID == item.ProductID {
			out[i].Quantity += item.Quantity
			return out
		}
	}
	return append(out, item)
}

// Remove retire un article du panier
func Remove(items []models.CartItem, productID string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return out
}

// UpdateQuantity fixe la quantité d'un article ; une quantité nulle le retire
func UpdateQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return Remove(items, productID)
	}
	out := snapshot(items)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// Clear vide le panier
func Clear() []models.CartItem {
	return []models.CartItem{}
}

// Total calcule le montant total du panier
func Total(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count retourne le nombre total d'unités dans le panier
func Count(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

func snapshot(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
