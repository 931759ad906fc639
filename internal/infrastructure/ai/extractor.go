package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/synergytrade/backend/internal/application/docproc"
)

// Extractor implements the document extraction boundary
type Extractor struct {
	client *Client
}

// NewExtractor creates a new Extractor
func NewExtractor(client *Client) *Extractor {
	return &Extractor{client: client}
}

var extractionSchema = &schemaNode{
	Type: "OBJECT",
	Properties: map[string]*schemaNode{
		"document_type":    {Type: "STRING"},
		"confidence_score": {Type: "NUMBER"},
		"extracted_fields": {
			Type: "OBJECT",
			Properties: map[string]*schemaNode{
				"nomor_surat_jalan": {Type: "STRING", Nullable: true},
				"no_po":             {Type: "STRING", Nullable: true},
				"tanggal":           {Type: "STRING", Nullable: true},
				"nama_supplier":     {Type: "STRING", Nullable: true},
			},
		},
		"table_data": {
			Type: "ARRAY",
			Items: &schemaNode{
				Type: "OBJECT",
				Properties: map[string]*schemaNode{
					"nama_barang":  {Type: "STRING", Nullable: true},
					"qty":          {Type: "INTEGER", Nullable: true},
					"nomor_rangka": {Type: "STRING", Nullable: true},
					"nomor_mesin":  {Type: "STRING", Nullable: true},
				},
			},
		},
		"warnings": {Type: "ARRAY", Items: &schemaNode{Type: "STRING"}},
	},
	Required: []string{"document_type", "confidence_score", "extracted_fields", "table_data", "warnings"},
}

// ExtractDocument sends the raw document to the extraction model and returns
// the typed result. Fields the model cannot read stay null; they are never
// invented here or downstream.
func (e *Extractor) ExtractDocument(ctx context.Context, document []byte, mimeType, documentTypeHint string) (*docproc.ExtractionResult, error) {
	if len(document) == 0 {
		return nil, fmt.Errorf("ai: empty document")
	}

	prompt := fmt.Sprintf(`Extract the structured data from this %s document.
Fill only fields that are clearly legible; leave everything else null and add
a warning describing what could not be read. Quantities must be whole numbers.
Score confidence_score between 0 and 100.`, documentTypeHint)

	parts := []part{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(document),
		}},
	}

	var result docproc.ExtractionResult
	if err := e.client.generateJSON(ctx, systemInstruction, parts, extractionSchema, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var _ docproc.DocumentExtractor = (*Extractor)(nil)
