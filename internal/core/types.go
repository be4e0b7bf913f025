// Package core provides the parsed .SRCINFO model and the parser.
package core

import (
	"iter"
	"slices"

	"github.com/git-pkgs/srcinfo/field"
)

// Section identifies the pkgbase section (zero value) or a pkgname section.
type Section struct {
	Name string
}

// IsBase reports whether s is the pkgbase section.
func (s Section) IsBase() bool {
	return s.Name == ""
}

func (s Section) String() string {
	if s.IsBase() {
		return "pkgbase"
	}
	return "pkgname " + s.Name
}

// Document is a parsed .SRCINFO file.
type Document struct {
	base        BaseSection
	derivatives map[string]*DerivativeSection
	order       []string
}

func newDocument() *Document {
	return &Document{derivatives: make(map[string]*DerivativeSection)}
}

// Base returns the pkgbase section.
func (d *Document) Base() *BaseSection {
	return &d.base
}

// Derivative returns the pkgname section named name.
func (d *Document) Derivative(name string) (*DerivativeSection, bool) {
	s, ok := d.derivatives[name]
	return s, ok
}

// DerivativeNames returns package names in the order their first pkgname
// header appeared.
func (d *Document) DerivativeNames() []string {
	return slices.Clone(d.order)
}

// Derivatives yields every pkgname section in header order.
func (d *Document) Derivatives() iter.Seq2[string, *DerivativeSection] {
	return func(yield func(string, *DerivativeSection) bool) {
		for _, name := range d.order {
			if !yield(name, d.derivatives[name]) {
				return
			}
		}
	}
}

// Len returns the number of pkgname sections.
func (d *Document) Len() int {
	return len(d.order)
}

// QueryRawText looks name up in the pkgbase section.
func (d *Document) QueryRawText(name field.AnyFieldName) (string, bool) {
	return d.base.QueryRawText(name)
}

// section returns the write cursor for s, creating the pkgname section on
// first use.
func (d *Document) section(s Section) sectionWriter {
	if s.IsBase() {
		return &d.base
	}
	if existing, ok := d.derivatives[s.Name]; ok {
		return existing
	}
	created := &DerivativeSection{name: s.Name}
	d.derivatives[s.Name] = created
	d.order = append(d.order, s.Name)
	return created
}
