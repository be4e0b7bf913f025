// Package srcinfo parses .SRCINFO package metadata.
//
// A .SRCINFO file has one pkgbase section, holding metadata shared by every
// package built from a PKGBUILD, followed by zero or more pkgname sections,
// one per split package. Parse reads the whole file in a single pass and
// returns whatever it managed to read even when it has to stop early.
//
// Basic usage:
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/git-pkgs/srcinfo"
//		"github.com/git-pkgs/srcinfo/field"
//	)
//
//	res := srcinfo.Parse(text)
//	if err := res.Err(); err != nil {
//		log.Printf("partial parse: %v", err)
//	}
//	doc := res.Parsed()
//	fmt.Println(doc.Base().Name(), doc.Base().FullVersion())
//	for name, pkg := range doc.Derivatives() {
//		fmt.Println(name, pkg.Get(field.Dependencies))
//	}
//
// Values returned by a Document are sub-slices of the parsed text.
package srcinfo

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/srcinfo/internal/core"
)

// Re-export types from internal/core
type (
	// Document is a parsed .SRCINFO file.
	Document = core.Document

	// BaseSection holds the fields of the pkgbase section.
	BaseSection = core.BaseSection

	// DerivativeSection holds the fields of one pkgname section.
	DerivativeSection = core.DerivativeSection

	// Section identifies the pkgbase section or a pkgname section.
	Section = core.Section

	// ParseResult is the document read so far plus the error that stopped
	// parsing, if any.
	ParseResult = core.ParseResult

	// Parser parses .SRCINFO text with custom options.
	Parser = core.Parser

	// Option configures a Parser.
	Option = core.Option

	// Dependency represents a package dependency.
	Dependency = core.Dependency

	// Scope indicates when a dependency is required.
	Scope = core.Scope

	// PURL represents a parsed Package URL.
	PURL = purl.PURL

	// Valuer is implemented by both section types.
	Valuer = core.Valuer
)

// Re-export constants
const (
	Runtime  = core.Runtime
	Build    = core.Build
	Test     = core.Test
	Optional = core.Optional
)

// Re-export errors
var (
	ErrInvalidLine = core.ErrInvalidLine
	ErrAlreadySet  = core.ErrAlreadySet
	ErrNotFound    = core.ErrNotFound
)

// Error types
type (
	InvalidLineError = core.InvalidLineError
	AlreadySetError  = core.AlreadySetError
	NotFoundError    = core.NotFoundError
)

// Parse parses .SRCINFO text.
//
// Unknown keys and keys with empty values are skipped. Parsing stops at a
// line without '=' (InvalidLineError) or at a second assignment of pkgver,
// pkgrel, epoch or pkgbase within a section (AlreadySetError); the result
// still carries everything read before that line.
func Parse(text string) ParseResult {
	return core.Parse(text)
}

// BulkParse parses many .SRCINFO texts in parallel, keyed by caller-chosen
// names. Each text is parsed independently, exactly as Parse would.
func BulkParse(ctx context.Context, texts map[string]string) map[string]ParseResult {
	return core.BulkParse(ctx, texts)
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	return core.NewParser(opts...)
}

// WithLogger sets the logger a Parser reports skipped lines and section
// switches to. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return core.WithLogger(l)
}

// WithShrinkToFit controls whether finished sections release spare slice
// capacity. Enabled by default.
func WithShrinkToFit(enabled bool) Option {
	return core.WithShrinkToFit(enabled)
}

// Dependencies lists the depends, makedepends, checkdepends and optdepends
// entries declared directly in a section.
func Dependencies(s Valuer) []Dependency {
	return core.Dependencies(s)
}

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:alpm/arch/pacman) and version PURLs
// (pkg:alpm/arch/pacman@6.1.0-3).
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}
