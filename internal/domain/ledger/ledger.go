// Package ledger implements the live pricing ledger behind the school
// bulk-order form: per-gender, per-category line items with reactively
// recomputed totals.
package ledger

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

// Field names a mutable LineItem attribute for UpdateItem.
type Field string

const (
	FieldType     Field = "type"
	FieldVariant  Field = "variant"
	FieldLevel    Field = "level"
	FieldPrice    Field = "price"
	FieldQuantity Field = "quantity"
)

// Amount is the result of parsing numeric user input. Coerced marks
// input that was not a valid number and defaulted to zero, so callers
// can tell "user typed 0" from "input was garbage".
type Amount struct {
	Value   float64
	Coerced bool
}

// ParseAmount parses free-form numeric input. Garbage, NaN and
// infinities coerce to zero; a computed total must always be finite.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{Coerced: true}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{Coerced: true}
	}
	return Amount{Value: v}
}

// UpdateOutcome reports what an UpdateItem call did.
type UpdateOutcome struct {
	// Applied is false when the update was dropped (out-of-range index,
	// negative amount, or a duplicate row under a dedupe policy).
	Applied bool
	// Coerced is true when numeric input was garbage and wrote zero.
	Coerced bool
	Item    model.LineItem
}

// Book owns the live ledger for one bulk order. It is not safe for
// concurrent use; all mutations happen on the caller's goroutine.
type Book struct {
	items           model.Ledger
	allowDuplicates bool
	newID           func() string
}

// Option configures a Book.
type Option func(*Book)

// WithDuplicatePolicy controls whether two rows in the same category
// may share a (type, variant) pair. Duplicates are allowed by default.
func WithDuplicatePolicy(allow bool) Option {
	return func(b *Book) { b.allowDuplicates = allow }
}

// WithIDGenerator overrides line item id generation.
func WithIDGenerator(fn func() string) Option {
	return func(b *Book) { b.newID = fn }
}

// New returns an empty Book.
func New(opts ...Option) *Book {
	b := &Book{
		items:           model.NewLedger(),
		allowDuplicates: true,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromLedger returns a Book seeded with a copy of l, for recomputing
// totals over a ledger received from a client. Rows under keys that
// are not a known gender or category are ignored; callers validate
// input before trusting the totals.
func FromLedger(l model.Ledger, opts ...Option) *Book {
	b := New(opts...)
	for g, categories := range l {
		if _, ok := model.ParseGender(string(g)); !ok {
			continue
		}
		for c, items := range categories {
			if _, ok := model.ParseCategory(string(c)); !ok {
				continue
			}
			copied := make([]model.LineItem, len(items))
			copy(copied, items)
			b.items[g][c] = copied
		}
	}
	return b
}

// Ledger returns a deep copy of the current state. The live ledger is
// owned exclusively by the Book; snapshots never alias it.
func (b *Book) Ledger() model.Ledger {
	return b.items.Clone()
}

// Items returns a copy of one category's rows.
func (b *Book) Items(g model.Gender, c model.Category) []model.LineItem {
	items := b.items.Items(g, c)
	out := make([]model.LineItem, len(items))
	copy(out, items)
	return out
}

// AddItem appends a zero-valued row with a fresh id. Always succeeds.
func (b *Book) AddItem(g model.Gender, c model.Category) model.LineItem {
	item := model.LineItem{ID: b.newID()}
	b.items[g][c] = append(b.items[g][c], item)
	return item
}

// RemoveItem deletes the row at index. An out-of-range index is a
// no-op; indices come from rendered lists that may lag behind removals.
func (b *Book) RemoveItem(g model.Gender, c model.Category, index int) {
	items := b.items[g][c]
	if index < 0 || index >= len(items) {
		return
	}
	b.items[g][c] = append(items[:index:index], items[index+1:]...)
}

// UpdateItem sets one field of the row at index. Price and quantity
// updates recompute the row total from the just-written value and the
// prior value of the other field. Negative amounts are dropped, the
// prior value retained.
func (b *Book) UpdateItem(g model.Gender, c model.Category, index int, field Field, value string) UpdateOutcome {
	items := b.items[g][c]
	if index < 0 || index >= len(items) {
		return UpdateOutcome{}
	}
	item := items[index]

	var coerced bool
	switch field {
	case FieldType:
		if !b.allowDuplicates && b.duplicateExists(g, c, index, value, item.Variant) {
			return UpdateOutcome{Item: item}
		}
		item.Type = value
	case FieldVariant:
		if !b.allowDuplicates && b.duplicateExists(g, c, index, item.Type, value) {
			return UpdateOutcome{Item: item}
		}
		item.Variant = value
	case FieldLevel:
		item.Level = value
	case FieldPrice:
		amount := ParseAmount(value)
		if amount.Value < 0 {
			return UpdateOutcome{Item: item}
		}
		item.Price = amount.Value
		coerced = amount.Coerced
	case FieldQuantity:
		amount := ParseAmount(value)
		if amount.Value < 0 {
			return UpdateOutcome{Item: item}
		}
		item.Quantity = int(amount.Value)
		coerced = amount.Coerced
	default:
		return UpdateOutcome{Item: item}
	}

	item.TotalPrice = item.Price * float64(item.Quantity)
	b.items[g][c][index] = item
	return UpdateOutcome{Applied: true, Coerced: coerced, Item: item}
}

func (b *Book) duplicateExists(g model.Gender, c model.Category, skip int, typeID, variant string) bool {
	if typeID == "" {
		return false
	}
	for i, other := range b.items[g][c] {
		if i == skip {
			continue
		}
		if other.Type == typeID && other.Variant == variant {
			return true
		}
	}
	return false
}

// CategoryTotal sums price*quantity over a category's rows. Totals are
// always recomputed from live fields, never read from cached row
// totals, so partially updated rows cannot desync the summary.
func (b *Book) CategoryTotal(g model.Gender, c model.Category) float64 {
	var sum float64
	for _, item := range b.items.Items(g, c) {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// GenderTotal sums CategoryTotal over all categories.
func (b *Book) GenderTotal(g model.Gender) float64 {
	var sum float64
	for _, c := range model.Categories() {
		sum += b.CategoryTotal(g, c)
	}
	return sum
}

// GrandTotal sums both gender totals.
func (b *Book) GrandTotal() float64 {
	var sum float64
	for _, g := range model.Genders() {
		sum += b.GenderTotal(g)
	}
	return sum
}
