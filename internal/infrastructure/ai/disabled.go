package ai

import (
	"context"

	appassistant "github.com/synergytrade/backend/internal/application/assistant"
	"github.com/synergytrade/backend/internal/application/docproc"
	appplanning "github.com/synergytrade/backend/internal/application/planning"
	appposting "github.com/synergytrade/backend/internal/application/posting"
	"github.com/synergytrade/backend/internal/domain/planning"
	"github.com/synergytrade/backend/internal/domain/shared"
)

// ErrDisabled is returned by every boundary when no API key is configured
var ErrDisabled = shared.NewDomainError("AI_DISABLED", "AI features are disabled: no API key configured")

// Disabled satisfies all model-service boundaries without a configured key.
// Every call fails loudly; the rest of the system keeps working.
type Disabled struct{}

// NewDisabled creates a new Disabled adapter
func NewDisabled() *Disabled {
	return &Disabled{}
}

// ExtractDocument always fails with ErrDisabled
func (Disabled) ExtractDocument(context.Context, []byte, string, string) (*docproc.ExtractionResult, error) {
	return nil, ErrDisabled
}

// ForecastDemand always fails with ErrDisabled
func (Disabled) ForecastDemand(context.Context, []appplanning.StockSnapshot, []appplanning.SalesSample) ([]planning.Forecast, error) {
	return nil, ErrDisabled
}

// AuditTransaction always fails with ErrDisabled
func (Disabled) AuditTransaction(context.Context, any) (*appposting.AuditVerdict, error) {
	return nil, ErrDisabled
}

// Answer always fails with ErrDisabled
func (Disabled) Answer(context.Context, string, string) (string, error) {
	return "", ErrDisabled
}

var (
	_ docproc.DocumentExtractor     = (*Disabled)(nil)
	_ appplanning.DemandForecaster  = (*Disabled)(nil)
	_ appposting.TransactionAuditor = (*Disabled)(nil)
	_ appassistant.Assistant        = (*Disabled)(nil)
)
