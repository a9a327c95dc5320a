package model

import "time"

// OrderStatus describes the submission lifecycle of an order record.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusSubmitted || s == OrderStatusCancelled
}

// CanTransition reports whether moving to next is a legal step.
// Every order starts pending; submitted and cancelled are terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s != OrderStatusPending {
		return false
	}
	return next == OrderStatusSubmitted || next == OrderStatusCancelled
}

// Contact identifies the person responsible for a bulk order.
type Contact struct {
	Person string `json:"person"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// OrderLine is a ledger row finalized into an order snapshot. LevelType
// carries the row's own academic level when set, otherwise the level
// selected for the whole order.
type OrderLine struct {
	LineItem
	LevelType string `json:"levelType"`
}

// OrderUniforms mirrors the ledger layout inside an immutable snapshot.
type OrderUniforms map[Gender]map[Category][]OrderLine

// OrderRecord is the immutable snapshot built at submission time.
// Only its status may change afterwards, via the repository.
type OrderRecord struct {
	ID          string        `json:"id"`
	SchoolName  string        `json:"name"`
	Location    string        `json:"location"`
	Contact     Contact       `json:"contact"`
	LevelID     string        `json:"level,omitempty"`
	Uniforms    OrderUniforms `json:"uniforms"`
	OrderDate   time.Time     `json:"orderDate"`
	Status      OrderStatus   `json:"status"`
	TotalAmount float64       `json:"totalAmount"`
}
