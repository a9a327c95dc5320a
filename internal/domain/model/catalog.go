package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Images is a product image list. The catalog endpoint serves either a
// plain array of URLs or an object with front/back views, so decoding
// is tolerant of both shapes.
type Images []string

func (im *Images) UnmarshalJSON(b []byte) error {
	var urls []string
	if err := json.Unmarshal(b, &urls); err == nil {
		*im = urls
		return nil
	}

	var views struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	}
	if err := json.Unmarshal(b, &views); err == nil {
		out := Images{}
		if views.Front != "" {
			out = append(out, views.Front)
		}
		if views.Back != "" {
			out = append(out, views.Back)
		}
		*im = out
		return nil
	}

	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*im = Images{single}
		return nil
	}

	return fmt.Errorf("images: unsupported shape %s", string(b))
}

// Stock is either a unit count or an availability label, depending on
// what the catalog endpoint returns for the product.
type Stock struct {
	Count int
	Label string
}

func (s *Stock) UnmarshalJSON(b []byte) error {
	var count float64
	if err := json.Unmarshal(b, &count); err == nil {
		s.Count = int(count)
		s.Label = ""
		return nil
	}

	var label string
	if err := json.Unmarshal(b, &label); err == nil {
		s.Count = 0
		s.Label = label
		return nil
	}

	return fmt.Errorf("stock: unsupported shape %s", string(b))
}

func (s Stock) MarshalJSON() ([]byte, error) {
	if s.Label != "" {
		return json.Marshal(s.Label)
	}
	return json.Marshal(s.Count)
}

// Available reports whether the product can be ordered.
func (s Stock) Available() bool {
	if s.Label != "" {
		return !strings.EqualFold(s.Label, "out of stock")
	}
	return s.Count > 0
}

// SizeOption is one size row of a product's size chart.
type SizeOption struct {
	Size    string `json:"size"`
	InStock bool   `json:"inStock"`
}

// Product is a catalog entry. The endpoint is inconsistent about some
// field names (school vs schoolName, image vs images), so decoding
// accepts both.
type Product struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Images      Images       `json:"images,omitempty"`
	SchoolName  string       `json:"schoolName,omitempty"`
	Type        string       `json:"type,omitempty"`
	Category    string       `json:"category,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	Stock       Stock        `json:"stock"`
	Sizes       []SizeOption `json:"sizes,omitempty"`
	Description string       `json:"description,omitempty"`
	Features    []string     `json:"features,omitempty"`
	Reviews     int          `json:"reviews,omitempty"`
}

func (p *Product) UnmarshalJSON(b []byte) error {
	type alias Product
	aux := struct {
		*alias
		School string `json:"school"`
		Image  string `json:"image"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if p.SchoolName == "" {
		p.SchoolName = aux.School
	}
	if len(p.Images) == 0 && aux.Image != "" {
		p.Images = Images{aux.Image}
	}
	return nil
}
