package core

import (
	"iter"
	"slices"

	"github.com/git-pkgs/srcinfo/field"
)

// Fields stores the values of one section, keyed by a field name type.
// Single-valued fields hold at most one value; multi-valued fields keep
// every value in the order it was read.
type Fields[F field.FieldName] struct {
	values map[F][]string
	order  []F
}

func (f *Fields[F]) init() {
	if f.values == nil {
		f.values = make(map[F][]string)
	}
}

// add stores value under name. It returns the previous value when name is
// single-valued and already set.
func (f *Fields[F]) add(name F, value string) (previous string, alreadySet bool) {
	f.init()
	existing, ok := f.values[name]
	if name.Any().SingleValued() && len(existing) > 0 {
		return existing[0], true
	}
	if !ok {
		f.order = append(f.order, name)
	}
	f.values[name] = append(existing, value)
	return "", false
}

func (f *Fields[F]) shrinkToFit() {
	for name, values := range f.values {
		f.values[name] = slices.Clip(values)
	}
	f.order = slices.Clip(f.order)
}

// Values returns a copy of every value stored under name.
func (f *Fields[F]) Values(name F) []string {
	return slices.Clone(f.values[name])
}

// First returns the first value stored under name.
func (f *Fields[F]) First(name F) (string, bool) {
	values := f.values[name]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Has reports whether name has at least one value.
func (f *Fields[F]) Has(name F) bool {
	return len(f.values[name]) > 0
}

// Len returns the number of distinct field names that hold values.
func (f *Fields[F]) Len() int {
	return len(f.order)
}

// All yields each stored field with its values, in the order the fields
// were first seen.
func (f *Fields[F]) All() iter.Seq2[F, []string] {
	return func(yield func(F, []string) bool) {
		for _, name := range f.order {
			if !yield(name, slices.Clone(f.values[name])) {
				return
			}
		}
	}
}

// BaseSection holds the fields of the pkgbase section.
type BaseSection struct {
	Fields[field.BaseFieldName]
	name string
}

// Name returns the value of pkgbase, or "" when the document has none.
func (s *BaseSection) Name() string {
	return s.name
}

// Version returns pkgver.
func (s *BaseSection) Version() string {
	v, _ := s.First(field.BaseFieldName(field.Version))
	return v
}

// Release returns pkgrel.
func (s *BaseSection) Release() string {
	v, _ := s.First(field.BaseFieldName(field.Release))
	return v
}

// Epoch returns epoch.
func (s *BaseSection) Epoch() string {
	v, _ := s.First(field.BaseFieldName(field.Epoch))
	return v
}

// FullVersion formats the version the way pacman displays it:
// [epoch:]pkgver-pkgrel. Missing parts are left out.
func (s *BaseSection) FullVersion() string {
	v := s.Version()
	if epoch := s.Epoch(); epoch != "" {
		v = epoch + ":" + v
	}
	if rel := s.Release(); rel != "" {
		v += "-" + rel
	}
	return v
}

// Get returns every value of name. Names outside the pkgbase section
// return nil.
func (s *BaseSection) Get(name field.AnyFieldName) []string {
	if name == field.Base {
		if s.name == "" {
			return nil
		}
		return []string{s.name}
	}
	b, err := name.ToBase()
	if err != nil {
		return nil
	}
	return s.Values(b)
}

// QueryRawText returns the raw text stored for name. For a multi-valued
// field that is the first value read.
func (s *BaseSection) QueryRawText(name field.AnyFieldName) (string, bool) {
	if name == field.Base {
		return s.name, s.name != ""
	}
	b, err := name.ToBase()
	if err != nil {
		return "", false
	}
	return s.First(b)
}

func (s *BaseSection) add(name field.AnyFieldName, value string) addOutcome {
	switch name {
	case field.Name:
		return addOutcome{header: value}
	case field.Base:
		if s.name != "" {
			return addOutcome{err: &AlreadySetError{Field: name, Previous: s.name, Value: value}}
		}
		s.name = value
		return addOutcome{}
	}

	b, err := name.ToBase()
	if err != nil {
		return addOutcome{skipped: true}
	}
	if prev, set := s.Fields.add(b, value); set {
		return addOutcome{err: &AlreadySetError{Field: name, Previous: prev, Value: value}}
	}
	return addOutcome{}
}

// DerivativeSection holds the fields of one pkgname section.
type DerivativeSection struct {
	Fields[field.DerivativeFieldName]
	name string
}

// Name returns the package name that introduced the section.
func (s *DerivativeSection) Name() string {
	return s.name
}

// Get returns every value of name. Names outside the pkgname section
// return nil.
func (s *DerivativeSection) Get(name field.AnyFieldName) []string {
	d, err := name.ToDerivative()
	if err != nil {
		return nil
	}
	return s.Values(d)
}

// QueryRawText returns the raw text stored for name. For a multi-valued
// field that is the first value read. pkgname reports the section name.
func (s *DerivativeSection) QueryRawText(name field.AnyFieldName) (string, bool) {
	if name == field.Name {
		return s.name, true
	}
	d, err := name.ToDerivative()
	if err != nil {
		return "", false
	}
	return s.First(d)
}

func (s *DerivativeSection) add(name field.AnyFieldName, value string) addOutcome {
	if name == field.Name {
		return addOutcome{header: value}
	}
	d, err := name.ToDerivative()
	if err != nil {
		return addOutcome{skipped: true}
	}
	if prev, set := s.Fields.add(d, value); set {
		return addOutcome{err: &AlreadySetError{Field: name, Previous: prev, Value: value}}
	}
	return addOutcome{}
}

// addOutcome is the result of adding one line to a section. At most one of
// header, err and skipped is set; the zero value means the value was stored.
type addOutcome struct {
	header  string
	err     *AlreadySetError
	skipped bool
}

// sectionWriter is the write cursor of the parser.
type sectionWriter interface {
	add(name field.AnyFieldName, value string) addOutcome
	shrinkToFit()
}
