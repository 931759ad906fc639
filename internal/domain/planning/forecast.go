// Package planning holds the advisory demand-planning types. Forecasts are
// never persisted and never change ledger state; they only inform the
// purchasing screen.
package planning

import "github.com/google/uuid"

// Urgency grades how quickly a suggested order should be placed
type Urgency string

const (
	UrgencyLow      Urgency = "Low"
	UrgencyMedium   Urgency = "Medium"
	UrgencyHigh     Urgency = "High"
	UrgencyCritical Urgency = "Critical"
)

// IsValid checks if the urgency is one of the known grades
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Forecast is one advisory demand prediction for a product
type Forecast struct {
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	CurrentStock    int64     `json:"current_stock"`
	PredictedDemand int64     `json:"predicted_demand"`
	SuggestedOrder  int64     `json:"suggested_order"`
	Reasoning       string    `json:"reasoning"`
	Urgency         Urgency   `json:"urgency"`
}
