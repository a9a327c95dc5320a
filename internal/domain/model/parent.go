package model

import "time"

// ParentOrder is an individual-student order submitted by a parent.
// It shares the bulk order status machine.
type ParentOrder struct {
	ID          string      `json:"id"`
	StudentName string      `json:"studentName"`
	SchoolName  string      `json:"schoolName"`
	LevelID     string      `json:"level,omitempty"`
	Items       []OrderLine `json:"items"`
	OrderDate   time.Time   `json:"orderDate"`
	Status      OrderStatus `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
}
