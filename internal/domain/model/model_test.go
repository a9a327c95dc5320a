package model

import (
	"encoding/json"
	"testing"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusSubmitted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusSubmitted, OrderStatusCancelled, false},
		{OrderStatusSubmitted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusSubmitted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}

	if OrderStatusPending.Terminal() {
		t.Fatal("pending must not be terminal")
	}
	if !OrderStatusSubmitted.Terminal() || !OrderStatusCancelled.Terminal() {
		t.Fatal("submitted and cancelled must be terminal")
	}
}

func TestNewLedgerInitializesAllBuckets(t *testing.T) {
	l := NewLedger()
	for _, g := range Genders() {
		for _, c := range Categories() {
			if l.Items(g, c) == nil {
				t.Fatalf("expected initialized sequence for %s/%s", g, c)
			}
		}
	}
}

func TestLedgerCloneDoesNotAlias(t *testing.T) {
	l := NewLedger()
	l[GenderBoys][CategorySummer] = append(l[GenderBoys][CategorySummer], LineItem{ID: "a", Price: 10, Quantity: 2})

	clone := l.Clone()
	clone[GenderBoys][CategorySummer][0].Price = 999

	if l[GenderBoys][CategorySummer][0].Price != 10 {
		t.Fatal("mutating the clone leaked into the source ledger")
	}
}

func TestImagesUnmarshalShapes(t *testing.T) {
	var arr Images
	if err := json.Unmarshal([]byte(`["a","b"]`), &arr); err != nil {
		t.Fatalf("array shape: %v", err)
	}
	if len(arr) != 2 || arr[0] != "a" {
		t.Fatalf("unexpected array result: %v", arr)
	}

	var views Images
	if err := json.Unmarshal([]byte(`{"front":"f","back":"b"}`), &views); err != nil {
		t.Fatalf("object shape: %v", err)
	}
	if len(views) != 2 || views[0] != "f" || views[1] != "b" {
		t.Fatalf("unexpected object result: %v", views)
	}

	var single Images
	if err := json.Unmarshal([]byte(`"one"`), &single); err != nil {
		t.Fatalf("string shape: %v", err)
	}
	if len(single) != 1 || single[0] != "one" {
		t.Fatalf("unexpected string result: %v", single)
	}
}

func TestStockUnmarshalShapes(t *testing.T) {
	var counted Stock
	if err := json.Unmarshal([]byte(`7`), &counted); err != nil {
		t.Fatalf("numeric stock: %v", err)
	}
	if counted.Count != 7 || !counted.Available() {
		t.Fatalf("unexpected numeric stock: %+v", counted)
	}

	var labelled Stock
	if err := json.Unmarshal([]byte(`"Out of Stock"`), &labelled); err != nil {
		t.Fatalf("labelled stock: %v", err)
	}
	if labelled.Available() {
		t.Fatal("out of stock label must not be available")
	}

	var zero Stock
	if err := json.Unmarshal([]byte(`0`), &zero); err != nil {
		t.Fatalf("zero stock: %v", err)
	}
	if zero.Available() {
		t.Fatal("zero count must not be available")
	}
}

func TestProductUnmarshalAlternateKeys(t *testing.T) {
	var p Product
	payload := `{"id":3,"name":"Sports Uniform","price":79.99,"image":"img.jpg","school":"Cambridge School","stock":"In Stock"}`
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SchoolName != "Cambridge School" {
		t.Fatalf("school alias not picked up: %q", p.SchoolName)
	}
	if len(p.Images) != 1 || p.Images[0] != "img.jpg" {
		t.Fatalf("image alias not picked up: %v", p.Images)
	}
	if !p.Stock.Available() {
		t.Fatal("labelled stock should be available")
	}
}
