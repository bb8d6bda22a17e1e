/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnresolvedType is returned when a document type name cannot be
	// resolved at the time resolution is attempted
	ErrUnresolvedType = errors.New("document type not registered")

	// ErrAssociationType is returned when a value assigned to an association
	// fails the cardinality or type check
	ErrAssociationType = errors.New("invalid association value")

	// ErrNotFound is returned when a stored document is not found
	ErrNotFound = errors.New("document not found")

	// ErrAlreadyRegistered is returned when registering a name that is taken
	ErrAlreadyRegistered = errors.New("already registered")
)

// UnresolvedTypeError reports a type name with no registered descriptor
type UnresolvedTypeError struct {
	Name string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("no document type registered for %q", e.Name)
}

func (e *UnresolvedTypeError) Is(target error) bool {
	return target == ErrUnresolvedType
}

// AssociationTypeError reports a value that does not match the shape an
// association expects. It is raised before any state is mutated.
type AssociationTypeError struct {
	Association string
	Owner       string
	Expected    string
	Value       string
}

func (e *AssociationTypeError) Error() string {
	return fmt.Sprintf("%s for %s expected %s but got %s",
		e.Association, e.Owner, e.Expected, e.Value)
}

func (e *AssociationTypeError) Is(target error) bool {
	return target == ErrAssociationType
}

// NotFoundError reports a missing document in a bucket
type NotFoundError struct {
	Bucket string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %q not found in bucket %q", e.Key, e.Bucket)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyRegisteredError reports a duplicate registration
type AlreadyRegisteredError struct {
	Kind string
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Name)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// Helper functions for creating errors

// NewUnresolvedTypeError creates a new UnresolvedTypeError
func NewUnresolvedTypeError(name string) error {
	return &UnresolvedTypeError{Name: name}
}

// NewAssociationTypeError creates a new AssociationTypeError
func NewAssociationTypeError(association, owner, expected, value string) error {
	return &AssociationTypeError{
		Association: association,
		Owner:       owner,
		Expected:    expected,
		Value:       value,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(bucket, key string) error {
	return &NotFoundError{Bucket: bucket, Key: key}
}

// NewAlreadyRegisteredError creates a new AlreadyRegisteredError
func NewAlreadyRegisteredError(kind, name string) error {
	return &AlreadyRegisteredError{Kind: kind, Name: name}
}

// IsUnresolvedType checks if an error is an unresolved type error
func IsUnresolvedType(err error) bool {
	return errors.Is(err, ErrUnresolvedType)
}

// IsAssociationType checks if an error is an association type error
func IsAssociationType(err error) bool {
	return errors.Is(err, ErrAssociationType)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyRegistered checks if an error is a duplicate registration error
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}
