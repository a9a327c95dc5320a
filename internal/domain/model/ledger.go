package model

// Gender selects one half of the bulk-order ledger.
type Gender string

const (
	GenderBoys  Gender = "boys"
	GenderGirls Gender = "girls"
)

// Genders lists ledger genders in display order.
func Genders() []Gender {
	return []Gender{GenderBoys, GenderGirls}
}

// ParseGender validates external gender input.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderBoys, GenderGirls:
		return Gender(s), true
	}
	return "", false
}

// Category groups uniform items by season of use.
type Category string

const (
	CategorySummer    Category = "summer"
	CategoryWinter    Category = "winter"
	CategorySports    Category = "sports"
	CategoryUniversal Category = "universal"
)

// Categories lists uniform categories in display order.
func Categories() []Category {
	return []Category{CategorySummer, CategoryWinter, CategorySports, CategoryUniversal}
}

// ParseCategory validates external category input.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategorySummer, CategoryWinter, CategorySports, CategoryUniversal:
		return Category(s), true
	}
	return "", false
}

// LineItem is one orderable row of a bulk order.
type LineItem struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Variant    string  `json:"variant"`
	Level      string  `json:"level,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// Ledger holds pending order entries keyed by gender and category.
// Insertion order within a category is display order.
type Ledger map[Gender]map[Category][]LineItem

// NewLedger returns a ledger with every gender/category sequence initialized.
func NewLedger() Ledger {
	l := make(Ledger, len(Genders()))
	for _, g := range Genders() {
		l[g] = make(map[Category][]LineItem, len(Categories()))
		for _, c := range Categories() {
			l[g][c] = []LineItem{}
		}
	}
	return l
}

// Items returns the sequence for a gender/category pair, tolerating
// missing keys as an empty sequence.
func (l Ledger) Items(g Gender, c Category) []LineItem {
	if l == nil {
		return nil
	}
	return l[g][c]
}

// Clone returns a deep copy so snapshots never alias the live ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for g, categories := range l {
		out[g] = make(map[Category][]LineItem, len(categories))
		for c, items := range categories {
			copied := make([]LineItem, len(items))
			copy(copied, items)
			out[g][c] = copied
		}
	}
	return out
}
