package resume

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType   = errors.New("unsupported file type: only pdf and docx are allowed")
	ErrNoExtractableText = errors.New("no extractable text found in pdf")
	ErrEmptyText         = errors.New("no text could be extracted from the resume")
)

// FileTooLargeError reports an upload above the configured ceiling.
type FileTooLargeError struct {
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file too large: maximum size allowed is %sMB", FormatMB(e.Limit))
}

// FormatMB renders a byte count in megabytes with one decimal, e.g. 5.0.
func FormatMB(n int64) string {
	return fmt.Sprintf("%.1f", float64(n)/1024/1024)
}

// FieldError names one field that failed schema validation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// SchemaValidationError is returned when model output cannot be shaped into a Profile.
type SchemaValidationError struct {
	Fields []FieldError
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "resume schema validation failed: " + strings.Join(parts, "; ")
}

// IsClientError reports whether err stems from the uploaded input rather than the service.
func IsClientError(err error) bool {
	var tooLarge *FileTooLargeError
	return errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrNoExtractableText) ||
		errors.Is(err, ErrEmptyText) ||
		errors.As(err, &tooLarge)
}
