// Package errors provides custom error types for the endpoint registry.
// These errors enable programmatic error checking with errors.Is and
// errors.As across the registry, the identifier helpers and the CLI.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the endpoint registry
var (
	// ErrUnknownKey indicates that a key is not part of the registry
	ErrUnknownKey = errors.New("unknown endpoint key")

	// ErrShapeMismatch indicates that a static endpoint was resolved with an
	// identifier, or a parameterized endpoint without one
	ErrShapeMismatch = errors.New("endpoint shape mismatch")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates that configuration could not be applied
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UnknownKeyError is returned when a key is not present in the registry.
type UnknownKeyError struct {
	Key string
}

// Error implements the error interface
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown endpoint key %q", e.Key)
}

// Is implements errors.Is support
func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// NewUnknownKeyError creates a new UnknownKeyError
func NewUnknownKeyError(key string) *UnknownKeyError {
	return &UnknownKeyError{Key: key}
}

// ShapeError is returned when an endpoint is resolved with the wrong arity.
type ShapeError struct {
	Key       string
	Has       string
	Requested string
}

// Error implements the error interface
func (e *ShapeError) Error() string {
	return fmt.Sprintf("endpoint %q is %s, resolved as %s", e.Key, e.Has, e.Requested)
}

// Is implements errors.Is support
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// NewShapeError creates a ShapeError for key, which has one shape but was
// resolved as another.
func NewShapeError(key, has, requested string) *ShapeError {
	return &ShapeError{Key: key, Has: has, Requested: requested}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, msg)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsUnknownKey checks if an error is an unknown key error
func IsUnknownKey(err error) bool {
	return errors.Is(err, ErrUnknownKey)
}

// IsShapeMismatch checks if an error is a shape mismatch error
func IsShapeMismatch(err error) bool {
	return errors.Is(err, ErrShapeMismatch)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, value any, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Value: value, Message: err.Error()}
}
