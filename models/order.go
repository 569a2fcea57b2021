package models

import (
	"fmt"
	"strings"
	"time"
)

// Fulfillment is the delivery mode for a placed order.
type Fulfillment string

const (
	FulfillmentPickup       Fulfillment = "Pickup"
	FulfillmentSeatDelivery Fulfillment = "Seat Delivery"
)

// Valid reports whether f is one of the known fulfillment modes.
func (f Fulfillment) Valid() bool {
	return f == FulfillmentPickup || f == FulfillmentSeatDelivery
}

// OrderStatus is one stage of the fixed kitchen progression.
type OrderStatus string

const (
	StatusQueued    OrderStatus = "Queued"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
)

// statusFlow is the strictly-forward progression an order moves through.
var statusFlow = []OrderStatus{StatusQueued, StatusPreparing, StatusReady, StatusDelivered}

// Next returns the status one step forward in the progression, clamped at
// Delivered. Unknown statuses map to Queued so corrupted data re-enters the
// flow at the start instead of wedging an order.
func (s OrderStatus) Next() OrderStatus {
	for i, status := range statusFlow {
		if status == s {
			if i == len(statusFlow)-1 {
				return s
			}
			return statusFlow[i+1]
		}
	}
	return StatusQueued
}

// Terminal reports whether s is the final status.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}

// Seat identifies a stadium seat for seat delivery.
type Seat struct {
	Section string `json:"section"`
	Row     string `json:"row"`
	Number  string `json:"number"`
}

// Complete reports whether every seat field is non-empty after trimming.
func (s Seat) Complete() bool {
	return strings.TrimSpace(s.Section) != "" &&
		strings.TrimSpace(s.Row) != "" &&
		strings.TrimSpace(s.Number) != ""
}

// Label renders the seat the way order cards display it.
func (s Seat) Label() string {
	return fmt.Sprintf("Section %s, Row %s, Seat %s",
		strings.TrimSpace(s.Section), strings.TrimSpace(s.Row), strings.TrimSpace(s.Number))
}

// OrderLine is an immutable copy of one cart line taken at placement time,
// decoupled from later catalog or cart changes.
type OrderLine struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Order is a placed order. Only Status ever changes after creation, and only
// forward through the fixed progression; every other field is immutable.
type Order struct {
	ID          string      `json:"id"`
	Items       []OrderLine `json:"items"`
	Total       float64     `json:"total"`
	Fulfillment Fulfillment `json:"fulfillment"`
	Seat        *string     `json:"seat"`
	Note        *string     `json:"note"`
	Status      OrderStatus `json:"status"`
	Concession  string      `json:"concession"`
	CreatedAt   time.Time   `json:"createdAt"`
}
