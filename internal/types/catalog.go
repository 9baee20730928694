// Package types provides the data shapes shared by the API client, the views and the web layer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ProductStatus is the availability of a catalog product.
type ProductStatus string

const (
	StatusAvailable  ProductStatus = "Available"
	StatusComingSoon ProductStatus = "Coming Soon"
)

// Job is one open position as served by GET /api/v1/jobs.
type Job struct {
	ID           FlexString `json:"id"`
	Title        string     `json:"title"`
	Department   string     `json:"department"`
	Location     string     `json:"location"`
	Type         string     `json:"type"`       // employment type, e.g. "Full-time"
	Experience   string     `json:"experience"` // experience level
	Salary       string     `json:"salary"`
	Posted       string     `json:"posted"` // posting age, e.g. "2 days ago"
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
}

// Product is one catalog entry as served by GET /api/v1/products.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Features    []string      `json:"features"`
	Price       string        `json:"price"`
	Rating      float64       `json:"rating"`
	Users       FlexString    `json:"users"`
	Status      ProductStatus `json:"status"`
}

// IsAvailable reports whether the product can be ordered today.
func (p Product) IsAvailable() bool {
	return p.Status == StatusAvailable
}

// FlexString accepts a JSON string or number and keeps its display form.
// Backends are inconsistent about ids and counters ("500+" vs 500).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the display form.
func (f FlexString) String() string {
	return string(f)
}

// Int parses the value as a base-10 integer.
func (f FlexString) Int() (int, error) {
	return strconv.Atoi(string(f))
}
