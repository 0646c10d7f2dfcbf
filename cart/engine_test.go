package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/models"
	"learnflow/store/kv"
)

// captureNotifier records notifications instead of logging them
type captureNotifier struct {
	successes []string
	infos     []string
	errors    []string
}

func (n *captureNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *captureNotifier) Info(message string)    { n.infos = append(n.infos, message) }
func (n *captureNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func testCourse(id uint, price float64) models.Course {
	return models.Course{
		ID:         id,
		Title:      "Test Course",
		Category:   "Testing",
		Price:      price,
		Instructor: models.Instructor{Name: "Jane Tester"},
	}
}

func newTestEngine(t *testing.T) (*Engine, *captureNotifier) {
	t.Helper()
	notifier := &captureNotifier{}
	engine := NewEngine(kv.NewMemory(), "test_cart", WithNotifier(notifier))
	return engine, notifier
}

func TestAddToCartMergesDuplicates(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(testCourse(1, 89.99))
	engine.AddToCart(testCourse(1, 89.99))

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, uint(1), items[0].CourseID)
}

func TestAddToCartRejectsMissingID(t *testing.T) {
	engine, notifier := newTestEngine(t)

	engine.AddToCart(models.Course{Title: "No ID"})

	assert.Empty(t, engine.Items())
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, "Invalid course data", notifier.errors[0])
}

func TestAddToCartSnapshotsCourse(t *testing.T) {
	engine, _ := newTestEngine(t)

	course := testCourse(1, 50)
	engine.AddToCart(course)

	// Mutating the source course must not leak into the cart line
	course.Price = 999
	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 50.0, items[0].Price)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestRemoveFromCart(t *testing.T) {
	engine, notifier := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	engine.AddToCart(testCourse(2, 20))
	engine.RemoveFromCart(1)

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].CourseID)

	// Zero id is reported, not applied
	engine.RemoveFromCart(0)
	assert.Len(t, engine.Items(), 1)
	assert.Contains(t, notifier.errors, "Invalid course ID")
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	removed, _ := newTestEngine(t)
	updated, _ := newTestEngine(t)

	for _, engine := range []*Engine{removed, updated} {
		engine.AddToCart(testCourse(1, 10))
		engine.AddToCart(testCourse(2, 20))
	}

	removed.RemoveFromCart(1)
	require.NoError(t, updated.UpdateQuantity(1, 0))

	assert.Equal(t, removed.Items(), updated.Items())
}

func TestUpdateQuantityRejectsNegative(t *testing.T) {
	engine, notifier := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	before := engine.Items()

	err := engine.UpdateQuantity(1, -1)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, before, engine.Items())
	assert.Contains(t, notifier.errors, "Invalid quantity")
}

func TestUpdateQuantityUnknownCourseIsNoop(t *testing.T) {
	engine, notifier := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	before := engine.Items()

	require.NoError(t, engine.UpdateQuantity(42, 3))
	assert.Equal(t, before, engine.Items())
	assert.Contains(t, notifier.infos, "Cart updated")
}

func TestUpdateQuantityReplaces(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	require.NoError(t, engine.UpdateQuantity(1, 5))

	assert.Equal(t, 5, engine.GetItemQuantity(1))
}

func TestQueries(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))

	assert.True(t, engine.IsInCart(1))
	assert.False(t, engine.IsInCart(2))
	assert.Equal(t, 1, engine.GetItemQuantity(1))
	assert.Equal(t, 0, engine.GetItemQuantity(2))
}

func TestGetCartSummary(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(testCourse(1, 89.99))
	engine.AddToCart(testCourse(1, 89.99)) // quantity 2
	engine.AddToCart(testCourse(2, 79.99))

	summary := engine.GetCartSummary()
	subtotal := 89.99*2 + 79.99

	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, 2, summary.Lines)
	assert.InDelta(t, subtotal, summary.Subtotal, 0.001)
	assert.InDelta(t, 20.80, summary.Tax, 0.001) // 259.97 * 0.08 = 20.7976 -> 20.80
	assert.InDelta(t, 280.77, summary.Total, 0.001)
}

func TestClearCart(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	engine.ClearCart()

	assert.Empty(t, engine.Items())
	assert.Equal(t, 0, engine.GetCartSummary().ItemCount)
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := kv.NewMemory()

	first := NewEngine(storage, "cart", WithNotifier(&captureNotifier{}))
	first.AddToCart(testCourse(1, 42))
	first.AddToCart(testCourse(1, 42))

	// A second engine on the same key sees the persisted cart
	second := NewEngine(storage, "cart", WithNotifier(&captureNotifier{}))
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 42.0, items[0].Price)
}

func TestCorruptStorageDefaultsToEmptyCart(t *testing.T) {
	storage := kv.NewMemory()
	require.NoError(t, storage.Put("cart", []byte("{not json")))

	engine := NewEngine(storage, "cart", WithNotifier(&captureNotifier{}))

	assert.Empty(t, engine.Items())
}

func TestValidateCartDropsBrokenLines(t *testing.T) {
	engine, notifier := newTestEngine(t)

	engine.AddToCart(testCourse(1, 10))
	engine.AddToCart(models.Course{ID: 2, Title: "Free but broken", Price: 0})
	engine.ValidateCart()

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].CourseID)
	assert.Contains(t, notifier.infos, "Some invalid items were removed from cart")
}

func TestPrepareCheckout(t *testing.T) {
	engine, notifier := newTestEngine(t)

	_, err := engine.PrepareCheckout()
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Contains(t, notifier.errors, "Cart is empty")

	engine.AddToCart(testCourse(1, 89.99))
	order, err := engine.PrepareCheckout()
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Jane Tester", order.Items[0].Instructor)
	assert.Equal(t, "Testing", order.Items[0].Category)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.WithinDuration(t, time.Now(), order.Timestamp, time.Second)
	assert.Equal(t, engine.GetCartSummary(), order.Summary)
}

func TestPrepareCheckoutFillsUnknownFields(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.AddToCart(models.Course{ID: 9, Title: "Bare", Price: 5})
	order, err := engine.PrepareCheckout()
	require.NoError(t, err)
	assert.Equal(t, "Unknown", order.Items[0].Instructor)
	assert.Equal(t, "Uncategorized", order.Items[0].Category)
}
