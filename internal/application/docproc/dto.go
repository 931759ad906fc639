package docproc

import (
	"github.com/go-playground/validator/v10"
	"github.com/synergytrade/backend/internal/domain/shared"
)

// Document type hints passed to the extraction service
const (
	DocumentTypeDeliveryNote = "SURAT_JALAN"
	DocumentTypeInvoice      = "INVOICE"
)

// ExtractedFields holds the header fields of a delivery document. Every
// field is optional: the extraction model may omit any of them, and absence
// is handled explicitly rather than assumed away.
type ExtractedFields struct {
	DeliveryNoteNo *string `json:"nomor_surat_jalan,omitempty"`
	PONumber       *string `json:"no_po,omitempty"`
	DocumentDate   *string `json:"tanggal,omitempty"`
	SupplierName   *string `json:"nama_supplier,omitempty"`
}

// ExtractedLineItem is one row of the document's item table
type ExtractedLineItem struct {
	ItemName      *string `json:"nama_barang,omitempty"`
	Quantity      *int64  `json:"qty,omitempty" validate:"omitempty,gte=0"`
	ChassisNumber *string `json:"nomor_rangka,omitempty"`
	EngineNumber  *string `json:"nomor_mesin,omitempty"`
}

// ExtractionResult is the typed output of the document extraction service
type ExtractionResult struct {
	DocumentType    string              `json:"document_type" validate:"required"`
	ConfidenceScore float64             `json:"confidence_score" validate:"gte=0,lte=100"`
	ExtractedFields ExtractedFields     `json:"extracted_fields"`
	TableData       []ExtractedLineItem `json:"table_data" validate:"dive"`
	Warnings        []string            `json:"warnings"`
}

var validate = validator.New()

// ValidateExtraction checks an extraction payload against the contract
// bounds (confidence 0-100, non-negative quantities). A payload that fails
// here is treated as a recoverable extraction failure, never as data.
func ValidateExtraction(result *ExtractionResult) error {
	if result == nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "Extraction result is empty")
	}
	if err := validate.Struct(result); err != nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "Extraction result failed validation: "+err.Error())
	}
	return nil
}

// Reference returns the best matching reference present in the extracted
// fields: the PO number when the model found one, otherwise the delivery
// note number. The second value is false when neither field is present.
func (f ExtractedFields) Reference() (string, bool) {
	if f.PONumber != nil && *f.PONumber != "" {
		return *f.PONumber, true
	}
	if f.DeliveryNoteNo != nil && *f.DeliveryNoteNo != "" {
		return *f.DeliveryNoteNo, true
	}
	return "", false
}
