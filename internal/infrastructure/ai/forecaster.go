package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	appplanning "github.com/synergytrade/backend/internal/application/planning"
	"github.com/synergytrade/backend/internal/domain/planning"
)

// Forecaster implements the demand-forecast boundary
type Forecaster struct {
	client *Client
}

// NewForecaster creates a new Forecaster
func NewForecaster(client *Client) *Forecaster {
	return &Forecaster{client: client}
}

var forecastSchema = &schemaNode{
	Type: "ARRAY",
	Items: &schemaNode{
		Type: "OBJECT",
		Properties: map[string]*schemaNode{
			"product_id":       {Type: "STRING"},
			"product_name":     {Type: "STRING"},
			"current_stock":    {Type: "INTEGER"},
			"predicted_demand": {Type: "INTEGER"},
			"suggested_order":  {Type: "INTEGER"},
			"reasoning":        {Type: "STRING"},
			"urgency":          {Type: "STRING", Enum: []string{"Low", "Medium", "High", "Critical"}},
		},
		Required: []string{"product_id", "product_name", "current_stock", "predicted_demand", "suggested_order", "reasoning", "urgency"},
	},
}

// forecastRow matches the schema above; product_id is parsed separately so a
// malformed ID from the model surfaces as a service error
type forecastRow struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	CurrentStock    int64  `json:"current_stock"`
	PredictedDemand int64  `json:"predicted_demand"`
	SuggestedOrder  int64  `json:"suggested_order"`
	Reasoning       string `json:"reasoning"`
	Urgency         string `json:"urgency"`
}

// ForecastDemand asks the model for ordering advice over the current
// inventory snapshot and recent sales
func (f *Forecaster) ForecastDemand(ctx context.Context, inventory []appplanning.StockSnapshot, recentSales []appplanning.SalesSample) ([]planning.Forecast, error) {
	inventoryJSON, err := json.Marshal(inventory)
	if err != nil {
		return nil, fmt.Errorf("ai: marshaling inventory: %w", err)
	}
	salesJSON, err := json.Marshal(recentSales)
	if err != nil {
		return nil, fmt.Errorf("ai: marshaling sales: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze the following inventory levels and recent sales history for a motorcycle dealer.

Current Inventory:
%s

Recent Sales Context:
%s

Task:
1. Identify items with critical low stock (indent risk).
2. Predict short-term demand based on general market knowledge of these models.
3. Suggest order quantities.

Return one entry per product. Use the product_id values given in the inventory.`,
		inventoryJSON, salesJSON)

	var rows []forecastRow
	if err := f.client.generateJSON(ctx, systemInstruction, []part{{Text: prompt}}, forecastSchema, &rows); err != nil {
		return nil, err
	}

	forecasts := make([]planning.Forecast, 0, len(rows))
	for _, row := range rows {
		productID, err := uuid.Parse(row.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: forecast references unknown product id %q", ErrServiceUnavailable, row.ProductID)
		}
		forecasts = append(forecasts, planning.Forecast{
			ProductID:       productID,
			ProductName:     row.ProductName,
			CurrentStock:    row.CurrentStock,
			PredictedDemand: row.PredictedDemand,
			SuggestedOrder:  row.SuggestedOrder,
			Reasoning:       row.Reasoning,
			Urgency:         planning.Urgency(row.Urgency),
		})
	}
	return forecasts, nil
}

var _ appplanning.DemandForecaster = (*Forecaster)(nil)
