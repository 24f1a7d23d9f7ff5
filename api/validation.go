package api

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult collects validation failures for a request.
type ValidationResult struct {
	Errors []ValidationError
}

// AddError records a validation failure.
func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors reports whether any validation failed.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

const (
	maxQueryLength = 500
	maxMaxResults  = 100
)

// ValidateQueryRequest checks the common query fields shared by the search,
// signals, and context endpoints.
func ValidateQueryRequest(query string, maxResults int) *ValidationResult {
	result := &ValidationResult{}
	if query == "" {
		result.AddError("query", "query must not be empty")
	}
	if len(query) > maxQueryLength {
		result.AddError("query", "query is too long")
	}
	if maxResults < 0 || maxResults > maxMaxResults {
		result.AddError("max_results", "max_results must be between 0 and 100")
	}
	return result
}
