// Package cart implements the shopping cart engine: line items, persistence
// to a durable key-value slot, derived totals and discount application.
package cart

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"learnflow/models"
	"learnflow/store/kv"
)

var (
	// ErrEmptyCart is returned when checkout is prepared on an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidQuantity rejects negative quantity updates
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Engine owns the cart line items for one storage key. Every mutation writes
// the full item list back to the key-value slot; construction reads it once.
// A missing or corrupt blob degrades to an empty cart, never to an error.
type Engine struct {
	mu       sync.Mutex
	key      string
	storage  kv.Store
	items    []models.CartItem
	taxRate  float64
	table    DiscountTable
	notifier Notifier
}

// Option configures an Engine
type Option func(*Engine)

// WithTaxRate overrides the default 8% tax rate
func WithTaxRate(rate float64) Option {
	return func(e *Engine) { e.taxRate = rate }
}

// WithDiscounts overrides the built-in discount table
func WithDiscounts(table DiscountTable) Option {
	return func(e *Engine) { e.table = table }
}

// WithNotifier overrides the log-backed notification channel
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// NewEngine loads any persisted cart from storage under the given key
func NewEngine(storage kv.Store, key string, opts ...Option) *Engine {
	e := &Engine{
		key:      key,
		storage:  storage,
		taxRate:  0.08,
		table:    DefaultDiscounts(),
		notifier: LogNotifier{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.items = e.load()
	return e
}

func (e *Engine) load() []models.CartItem {
	raw, err := e.storage.Get(e.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNoValue) {
			log.Printf("Error loading cart from storage: %v", err)
		}
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("Error loading cart from storage: %v", err)
		return []models.CartItem{}
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items
}

// persist writes the full item list back to storage. Write failures are
// logged, not surfaced; the in-memory cart stays authoritative for the session.
func (e *Engine) persist() {
	raw, err := json.Marshal(e.items)
	if err != nil {
		log.Printf("Error saving cart to storage: %v", err)
		return
	}
	if err := e.storage.Put(e.key, raw); err != nil {
		log.Printf("Error saving cart to storage: %v", err)
	}
}

// AddToCart merges the course into the cart. An existing line gets its
// quantity bumped; otherwise a new line is appended with a snapshot of the
// course taken now. Courses without an id are reported through the notifier
// and ignored.
func (e *Engine) AddToCart(course models.Course) {
	if course.ID == 0 {
		e.notifier.Error("Invalid course data")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].CourseID == course.ID {
			e.items[i].Quantity++
			e.persist()
			e.notifier.Info("Course quantity updated in cart")
			return
		}
	}
	e.items = append(e.items, models.CartItem{
		CourseSnapshot: course.Snapshot(),
		Quantity:       1,
		AddedAt:        time.Now(),
	})
	e.persist()
	e.notifier.Success("Course added to cart")
}

// RemoveFromCart drops the line for the course if present
func (e *Engine) RemoveFromCart(courseID uint) {
	if courseID == 0 {
		e.notifier.Error("Invalid course ID")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(courseID)
	e.persist()
	e.notifier.Success("Course removed from cart")
}

func (e *Engine) removeLocked(courseID uint) {
	filtered := e.items[:0]
	for _, item := range e.items {
		if item.CourseID != courseID {
			filtered = append(filtered, item)
		}
	}
	e.items = filtered
}

// UpdateQuantity replaces a line's quantity. Zero removes the line; negative
// values are rejected without touching state.
func (e *Engine) UpdateQuantity(courseID uint, quantity int) error {
	if courseID == 0 || quantity < 0 {
		e.notifier.Error("Invalid quantity")
		return ErrInvalidQuantity
	}

	if quantity == 0 {
		e.RemoveFromCart(courseID)
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// An absent course id is a no-op that still persists and notifies,
	// matching how repeated UI events are absorbed silently.
	for i := range e.items {
		if e.items[i].CourseID == courseID {
			e.items[i].Quantity = quantity
		}
	}
	e.persist()
	e.notifier.Info("Cart updated")
	return nil
}

// ClearCart empties the cart unconditionally
func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = []models.CartItem{}
	e.persist()
	e.notifier.Success("Cart cleared")
}

// IsInCart reports whether the course has a line in the cart
func (e *Engine) IsInCart(courseID uint) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, item := range e.items {
		if item.CourseID == courseID {
			return true
		}
	}
	return false
}

// GetItemQuantity returns the line quantity, or zero when absent
func (e *Engine) GetItemQuantity(courseID uint) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, item := range e.items {
		if item.CourseID == courseID {
			return item.Quantity
		}
	}
	return 0
}

// Items returns a copy of the cart lines in insertion order
func (e *Engine) Items() []models.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

// GetCartSummary derives totals from the current lines. Accumulation keeps
// full float precision; rounding happens once at this boundary.
func (e *Engine) GetCartSummary() models.CartSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.summaryLocked()
}

func (e *Engine) summaryLocked() models.CartSummary {
	itemCount := 0
	subtotal := 0.0
	for _, item := range e.items {
		itemCount += item.Quantity
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * e.taxRate
	return models.CartSummary{
		ItemCount: itemCount,
		Subtotal:  round2(subtotal),
		Tax:       round2(tax),
		Total:     round2(subtotal + tax),
		Lines:     len(e.items),
	}
}

// ApplyDiscount resolves a code against the discount table. The returned
// discount is transient: the checkout flow applies it to the payable total,
// nothing is written to the persisted cart.
func (e *Engine) ApplyDiscount(code string) (*models.Discount, error) {
	discount, err := e.table.Lookup(code)
	if err != nil {
		e.notifier.Error("Invalid discount code")
		return nil, err
	}
	e.notifier.Success("Discount applied: " + discount.Description)
	return discount, nil
}

// ValidateCart drops lines whose snapshot lost its identity or price
func (e *Engine) ValidateCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	valid := e.items[:0]
	dropped := false
	for _, item := range e.items {
		if item.CourseID != 0 && item.Title != "" && item.Price > 0 {
			valid = append(valid, item)
		} else {
			dropped = true
		}
	}
	e.items = valid
	if dropped {
		e.persist()
		e.notifier.Info("Some invalid items were removed from cart")
	}
}

// PrepareCheckout snapshots the cart into the contract handed to the
// checkout flow. An empty cart refuses checkout.
func (e *Engine) PrepareCheckout() (*models.CheckoutOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.items) == 0 {
		e.notifier.Error("Cart is empty")
		return nil, ErrEmptyCart
	}

	lines := make([]models.CheckoutLine, 0, len(e.items))
	for _, item := range e.items {
		instructor := item.Instructor.Name
		if instructor == "" {
			instructor = "Unknown"
		}
		category := item.Category
		if category == "" {
			category = "Uncategorized"
		}
		lines = append(lines, models.CheckoutLine{
			CourseID:   item.CourseID,
			Title:      item.Title,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Instructor: instructor,
			Category:   category,
		})
	}
	return &models.CheckoutOrder{
		Items:     lines,
		Summary:   e.summaryLocked(),
		Timestamp: time.Now(),
	}, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
