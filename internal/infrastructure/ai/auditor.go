package ai

import (
	"context"
	"encoding/json"
	"fmt"

	appposting "github.com/synergytrade/backend/internal/application/posting"
)

const auditInstruction = "You are an Internal Audit AI. Analyze for fraud, unusual amounts, or policy violations."

// Auditor implements the transaction-audit boundary. An audit failure is an
// error, never an implicit pass: postings stay blocked until the audit
// service answers.
type Auditor struct {
	client *Client
}

// NewAuditor creates a new Auditor
func NewAuditor(client *Client) *Auditor {
	return &Auditor{client: client}
}

var auditSchema = &schemaNode{
	Type: "OBJECT",
	Properties: map[string]*schemaNode{
		"safe":     {Type: "BOOLEAN"},
		"analysis": {Type: "STRING"},
	},
	Required: []string{"safe", "analysis"},
}

// AuditTransaction submits the candidate transaction for fraud analysis
func (a *Auditor) AuditTransaction(ctx context.Context, candidate any) (*appposting.AuditVerdict, error) {
	candidateJSON, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("ai: marshaling transaction: %w", err)
	}

	prompt := fmt.Sprintf("Audit this transaction for fraud risk or anomalies: %s", candidateJSON)

	var verdict appposting.AuditVerdict
	if err := a.client.generateJSON(ctx, auditInstruction, []part{{Text: prompt}}, auditSchema, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

var _ appposting.TransactionAuditor = (*Auditor)(nil)
