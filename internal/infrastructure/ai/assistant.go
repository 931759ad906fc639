package ai

import (
	"context"
	"fmt"

	appassistant "github.com/synergytrade/backend/internal/application/assistant"
)

// AssistantAdapter implements the question-answering boundary
type AssistantAdapter struct {
	client *Client
}

// NewAssistantAdapter creates a new AssistantAdapter
func NewAssistantAdapter(client *Client) *AssistantAdapter {
	return &AssistantAdapter{client: client}
}

// Answer relays one question together with the business-context snapshot
func (a *AssistantAdapter) Answer(ctx context.Context, question, businessContext string) (string, error) {
	prompt := fmt.Sprintf("Context Data: %s\n\nUser Query: %s", businessContext, question)

	req := &generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	return a.client.generate(ctx, req)
}

var _ appassistant.Assistant = (*AssistantAdapter)(nil)
