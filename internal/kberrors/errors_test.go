package kberrors

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	// Test with field name
	err := NewValidationError("query", "must not be empty")

	expectedMsg := "validation error for field 'query': must not be empty"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	// Test without field name
	err2 := NewValidationError("", "bad request body")

	expectedMsg2 := "validation error: bad request body"
	if err2.Error() != expectedMsg2 {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg2, err2.Error())
	}

	// Test Is() method
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	// Test that it doesn't match other sentinels
	if errors.Is(err, ErrCorpusNotLoaded) {
		t.Error("Error should not match ErrCorpusNotLoaded")
	}
}

func TestArrangementNotFoundError(t *testing.T) {
	err := NewArrangementNotFoundError("Kids Party")

	expectedMsg := "arrangement named 'Kids Party' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrArrangementNotFound) {
		t.Error("Expected error to match ErrArrangementNotFound sentinel")
	}
}

func TestChangeNotFoundError(t *testing.T) {
	err := NewChangeNotFoundError("faq_MODIFIED_abc123def456")

	expectedMsg := "change with ID 'faq_MODIFIED_abc123def456' not found"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message '%s', got '%s'", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrChangeNotFound) {
		t.Error("Expected error to match ErrChangeNotFound sentinel")
	}

	if errors.Is(err, ErrArrangementNotFound) {
		t.Error("Error should not match ErrArrangementNotFound")
	}
}
