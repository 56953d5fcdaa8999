package service

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"portfolio/internal/mail"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("resource not found")
	ErrReaderNil  = errors.New("reader is nil")

	// ErrBadHeader means the notification could not be built because a header held a line break.
	ErrBadHeader = mail.ErrBadHeader
	// ErrCaptchaUnavailable means the anti-spam verifier could not be consulted.
	ErrCaptchaUnavailable = errors.New("captcha verifier unavailable")

	ErrProfileNotFound   = errors.New("Profile not found")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrResumeNotUploaded = errors.New("Resume file not uploaded")
	ErrNotPDF            = errors.New("file is not a readable PDF")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// notFound maps a repository miss to ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ValidationError carries a human readable description per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ResumeReadError wraps a storage failure while opening the resume object.
type ResumeReadError struct {
	Err error
}

func (e *ResumeReadError) Error() string {
	return fmt.Sprintf("Failed to read resume file: %v", e.Err)
}

func (e *ResumeReadError) Unwrap() error { return e.Err }
