package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")

	// Posting errors
	ErrUnmatchedReference = NewDomainError("UNMATCHED_REFERENCE", "No open purchase order matches the extracted reference")
	ErrAlreadyPosted      = NewDomainError("ALREADY_POSTED", "Document has already been posted")
	ErrInsufficientStock  = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrUnknownProduct     = NewDomainError("UNKNOWN_PRODUCT", "Referenced product does not exist")
	ErrUnbalancedEntry    = NewDomainError("UNBALANCED_ENTRY", "Journal entry debits and credits do not balance")
)
