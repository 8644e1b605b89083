package auth

import (
	"log"
	"time"

	"github.com/hammadi-dev/cartly-api/models"
	"github.com/hammadi-dev/cartly-api/session"
	"gorm.io/gorm"
)

// MergeStatus tags the outcome of a guest-cart merge so callers can decide
// whether to surface it. A failed merge never blocks login.
type MergeStatus string

const (
	MergeNone   MergeStatus = "no-guest-cart"
	MergeEmpty  MergeStatus = "guest-cart-empty"
	MergeOK     MergeStatus = "merged"
	MergeFailed MergeStatus = "merge-failed"
)

// mergeChange is the planned post-merge state for one product line.
type mergeChange struct {
	ProductID uint
	Quantity  int  // final quantity, already clamped to stock
	Existing  bool // an item for this product is already in the cart
}

// planMerge folds guest lines into the user's cart items. Per line: a product
// that no longer exists is skipped, quantities for the same product add up,
// and the merged quantity is clamped to the product's current stock. Lines
// that end up below 1 are dropped rather than stored as zero.
func planMerge(existing []models.CartItem, guest []session.Line, lookup func(uint) (models.Product, bool)) []mergeChange {
	current := make(map[uint]int, len(existing))
	for _, item := range existing {
		current[item.ProductID] = item.Quantity
	}

	var changes []mergeChange
	planned := make(map[uint]int)

	for _, line := range guest {
		if line.Quantity < 1 {
			continue
		}
		product, ok := lookup(line.ProductID)
		if !ok {
			log.Printf("cart merge: product %d no longer exists, dropping line", line.ProductID)
			continue
		}

		base := current[line.ProductID]
		if prev, merged := planned[line.ProductID]; merged {
			base = prev
		}

		qty := base + line.Quantity
		if qty > product.StockQuantity {
			qty = product.StockQuantity
			log.Printf("cart merge: clamped product %d to stock %d", line.ProductID, qty)
		}
		if qty < 1 {
			continue
		}

		planned[line.ProductID] = qty
		_, existsInCart := current[line.ProductID]
		changes = upsertChange(changes, mergeChange{
			ProductID: line.ProductID,
			Quantity:  qty,
			Existing:  existsInCart,
		})
	}
	return changes
}

func upsertChange(changes []mergeChange, ch mergeChange) []mergeChange {
	for i := range changes {
		if changes[i].ProductID == ch.ProductID {
			changes[i].Quantity = ch.Quantity
			return changes
		}
	}
	return append(changes, ch)
}

// MergeGuestCart merges the anonymous session cart into the user's persistent
// cart as one transaction. The session cart is removed only after a
// successful commit, so a failed merge loses nothing.
func MergeGuestCart(db *gorm.DB, sessions *session.Store, sessionID, userID string) MergeStatus {
	guestLines := sessions.Get(sessionID)
	if guestLines == nil {
		return MergeNone
	}
	if len(guestLines) == 0 {
		return MergeEmpty
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		lookup := func(productID uint) (models.Product, bool) {
			var product models.Product
			if err := tx.First(&product, "id = ?", productID).Error; err != nil {
				return models.Product{}, false
			}
			return product, true
		}

		for _, ch := range planMerge(cart.Items, guestLines, lookup) {
			if ch.Existing {
				if err := tx.Model(&models.CartItem{}).
					Where("cart_id = ? AND product_id = ?", cart.CartID, ch.ProductID).
					Updates(map[string]interface{}{"quantity": ch.Quantity, "added_at": time.Now()}).Error; err != nil {
					return err
				}
				continue
			}
			newItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: ch.ProductID,
				Quantity:  ch.Quantity,
				AddedAt:   time.Now(),
			}
			if err := tx.Create(&newItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("cart merge failed for user %s: %v", userID, err)
		return MergeFailed
	}

	sessions.Remove(sessionID)
	return MergeOK
}
