// Package cart is the in-progress sale: line items, totals, and checkout into
// an immutable transaction. The cart owns its items until checkout, then the
// snapshot moves onto the transaction and the cart is emptied.
package cart

import (
	"errors"
	"sync"
	"time"

	"boutique-pos/internal/catalog"
	"boutique-pos/internal/models"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("cart: product not found")
	ErrItemNotFound      = errors.New("cart: item not found")
	ErrSaleNotFound      = errors.New("cart: sale not found")
	ErrInsufficientStock = errors.New("cart: insufficient stock")
	ErrInvalidQuantity   = errors.New("cart: quantity must be at least 1")
	ErrEmptyCart         = errors.New("cart: cart is empty")
	ErrInsufficientCash  = errors.New("cart: insufficient amount received")
	ErrInvalidPayment    = errors.New("cart: unknown payment method")
)

// Engine validates the cart against the catalog and keeps the append-only
// transaction log. Transactions live in memory only.
type Engine struct {
	mu           sync.Mutex
	catalog      *catalog.Store
	items        []models.CartItem
	transactions []models.Transaction
	now          func() time.Time
}

func NewEngine(cat *catalog.Store) *Engine {
	return &Engine{catalog: cat, now: time.Now}
}

// AddItem puts quantity units of a product into the cart, merging into an
// existing line. The combined cart quantity may never exceed current stock;
// a failed add leaves the cart untouched.
func (e *Engine) AddItem(productID string, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	product, err := e.catalog.GetProductByID(productID)
	if err != nil {
		return models.CartItem{}, ErrProductNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity > product.Stock {
		return models.CartItem{}, ErrInsufficientStock
	}

	for i := range e.items {
		if e.items[i].ProductID == productID {
			merged := e.items[i].Quantity + quantity
			if merged > product.Stock {
				return models.CartItem{}, ErrInsufficientStock
			}
			e.items[i].Quantity = merged
			return e.items[i], nil
		}
	}

	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Name:      product.Name,  // snapshot
		Price:     product.Price, // snapshot
		Quantity:  quantity,
	}
	e.items = append(e.items, item)
	return item, nil
}

// UpdateQuantity sets a line's quantity, rejecting anything over stock.
func (e *Engine) UpdateQuantity(itemID string, quantity int) (models.CartItem, error) {
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID != itemID {
			continue
		}
		product, err := e.catalog.GetProductByID(e.items[i].ProductID)
		if err != nil {
			return models.CartItem{}, ErrProductNotFound
		}
		if quantity > product.Stock {
			return models.CartItem{}, ErrInsufficientStock
		}
		e.items[i].Quantity = quantity
		return e.items[i], nil
	}
	return models.CartItem{}, ErrItemNotFound
}

// RemoveItem drops a line from the cart.
func (e *Engine) RemoveItem(itemID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ID == itemID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Items returns a copy of the current lines.
func (e *Engine) Items() []models.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

// Total sums price*quantity over the lines. Tax is fixed at 0%.
func (e *Engine) Total() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total()
}

func (e *Engine) total() float64 {
	var total float64
	for _, item := range e.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Checkout finalizes the cart into a transaction credited to the cashier.
// For cash (amountReceived matters only there) the tendered amount must cover
// the total; change = amountReceived - total. On success the catalog stock is
// decremented per line, the transaction is appended to the log and the cart
// is cleared. Any validation failure leaves everything unchanged.
func (e *Engine) Checkout(method models.PaymentMethod, amountReceived float64, cashier models.User) (models.Transaction, error) {
	if !method.Valid() {
		return models.Transaction{}, ErrInvalidPayment
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.items) == 0 {
		return models.Transaction{}, ErrEmptyCart
	}

	total := e.total()
	if method == models.PaymentCash && (amountReceived <= 0 || amountReceived < total) {
		return models.Transaction{}, ErrInsufficientCash
	}

	// Decrement stock per line. UpdateStock clamps at zero, so this cannot
	// fail mid-way and there is nothing to roll back.
	for _, item := range e.items {
		if err := e.catalog.UpdateStock(item.ProductID, -item.Quantity); err != nil && !errors.Is(err, catalog.ErrNotFound) {
			return models.Transaction{}, err
		}
	}

	items := make([]models.CartItem, len(e.items))
	copy(items, e.items)

	tx := models.Transaction{
		ID:            uuid.NewString(),
		Items:         items,
		Total:         total,
		PaymentMethod: method,
		Timestamp:     e.now(),
		CashierID:     cashier.ID,
		CashierName:   cashier.Name,
	}
	if method == models.PaymentCash {
		change := amountReceived - total
		tx.AmountReceived = &amountReceived
		tx.Change = &change
	}

	e.transactions = append(e.transactions, tx)
	e.items = nil
	return tx, nil
}

// Transactions returns a copy of the append-only sale log.
func (e *Engine) Transactions() []models.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}

// GetTransaction looks a completed sale up by id, for receipt reprints.
func (e *Engine) GetTransaction(id string) (models.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, tx := range e.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return models.Transaction{}, ErrSaleNotFound
}
