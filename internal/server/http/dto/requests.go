package dto

import "github.com/monisha-uniforms/storefront/internal/domain/model"

// CartAddRequest describes an add-to-cart payload.
type CartAddRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Size     string  `json:"size"`
	Quantity int     `json:"quantity"`
}

// CartUpdateRequest carries a quantity change for one cart entry.
type CartUpdateRequest struct {
	Quantity int `json:"quantity"`
}

// WishlistAddRequest describes a save-for-later payload.
type WishlistAddRequest struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Price      float64            `json:"price"`
	Image      string             `json:"image"`
	SchoolName string             `json:"schoolName"`
	Sizes      []model.SizeOption `json:"sizes"`
}

// ContactRequest identifies the person responsible for a bulk order.
type ContactRequest struct {
	Person string `json:"person"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// BulkOrderRequest is the bulk-order form payload.
type BulkOrderRequest struct {
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Contact   ContactRequest `json:"contact"`
	Level     string         `json:"level"`
	Uniforms  model.Ledger   `json:"uniforms"`
	NewSchool bool           `json:"newSchool"`
}

// ParentOrderRequest is the individual-student order payload.
type ParentOrderRequest struct {
	StudentName string            `json:"studentName"`
	SchoolName  string            `json:"schoolName"`
	Level       string            `json:"level"`
	Items       []model.OrderLine `json:"items"`
}
