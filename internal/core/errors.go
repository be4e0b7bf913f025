package core

import (
	"errors"
	"fmt"

	"github.com/git-pkgs/srcinfo/field"
)

var (
	// ErrInvalidLine is returned when a line has no '=' delimiter.
	ErrInvalidLine = errors.New("invalid line")

	// ErrAlreadySet is returned when a single-valued field is assigned twice
	// in the same section.
	ErrAlreadySet = errors.New("field already set")
)

// InvalidLineError carries the line that could not be split.
type InvalidLineError struct {
	Line   string
	Number int // 1-based
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %d: %q", e.Number, e.Line)
}

func (e *InvalidLineError) Unwrap() error {
	return ErrInvalidLine
}

// AlreadySetError describes a second assignment to a single-valued field.
type AlreadySetError struct {
	Section  Section
	Field    field.AnyFieldName
	Previous string
	Value    string
}

func (e *AlreadySetError) Error() string {
	detail := fmt.Sprintf("%s is already set to %q, cannot set it to %q", e.Field, e.Previous, e.Value)
	if e.Section.IsBase() {
		return "failed to insert value to the pkgbase section: " + detail
	}
	return fmt.Sprintf("failed to insert value to the pkgname section named %s: %s", e.Section.Name, detail)
}

func (e *AlreadySetError) Unwrap() error {
	return ErrAlreadySet
}

// ErrNotFound is returned when a package is not declared in the document.
var ErrNotFound = errors.New("not found")

// NotFoundError wraps ErrNotFound with the requested package name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("package %s not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
