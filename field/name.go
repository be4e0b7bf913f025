// Package field defines the closed vocabulary of .SRCINFO field names.
//
// Every recognized key belongs to exactly one of three groups: header fields
// (pkgbase, pkgname), base-only fields (pkgver, pkgrel, epoch, validpgpkeys)
// and shared fields that may appear in both the pkgbase and the pkgname
// sections. The four name types model the subsets of that vocabulary:
//
//	AnyFieldName        = header + base-only + shared
//	HeaderFieldName     = header
//	BaseFieldName       = base-only + shared
//	DerivativeFieldName = shared
//
// Converting a narrow name to AnyFieldName always succeeds. Converting the
// other way fails with a *CastError that carries the original name.
package field

import "fmt"

// AnyFieldName is any recognized field name of a .SRCINFO file.
type AnyFieldName uint8

// Header fields.
const (
	Base AnyFieldName = iota
	Name
)

// Fields only allowed in the pkgbase section.
const (
	Epoch AnyFieldName = iota + Name + 1
	Release
	ValidPGPKeys
	Version
)

// Fields allowed in both the pkgbase and the pkgname sections.
const (
	Architecture AnyFieldName = iota + Version + 1
	Backup
	ChangeLog
	Description
	Groups
	Install
	License
	NoExtract
	Options
	Source
	URL

	Dependencies
	CheckDependencies
	MakeDependencies
	OptionalDependencies
	Provides
	Conflicts
	Replaces

	MD5Checksums
	SHA1Checksums
	SHA224Checksums
	SHA256Checksums
	SHA384Checksums
	SHA512Checksums

	count
)

type kind uint8

const (
	kindHeader kind = iota
	kindBase
	kindShared
)

var names = [count]struct {
	literal string
	kind    kind
	single  bool
}{
	Base: {"pkgbase", kindHeader, true},
	Name: {"pkgname", kindHeader, false},

	Epoch:        {"epoch", kindBase, true},
	Release:      {"pkgrel", kindBase, true},
	ValidPGPKeys: {"validpgpkeys", kindBase, false},
	Version:      {"pkgver", kindBase, true},

	Architecture: {"arch", kindShared, false},
	Backup:       {"backup", kindShared, false},
	ChangeLog:    {"changelog", kindShared, false},
	Description:  {"pkgdesc", kindShared, false},
	Groups:       {"groups", kindShared, false},
	Install:      {"install", kindShared, false},
	License:      {"license", kindShared, false},
	NoExtract:    {"noextract", kindShared, false},
	Options:      {"options", kindShared, false},
	Source:       {"source", kindShared, false},
	URL:          {"url", kindShared, false},

	Dependencies:         {"depends", kindShared, false},
	CheckDependencies:    {"checkdepends", kindShared, false},
	MakeDependencies:     {"makedepends", kindShared, false},
	OptionalDependencies: {"optdepends", kindShared, false},
	Provides:             {"provides", kindShared, false},
	Conflicts:            {"conflicts", kindShared, false},
	Replaces:             {"replaces", kindShared, false},

	MD5Checksums:    {"md5sums", kindShared, false},
	SHA1Checksums:   {"sha1sums", kindShared, false},
	SHA224Checksums: {"sha224sums", kindShared, false},
	SHA256Checksums: {"sha256sums", kindShared, false},
	SHA384Checksums: {"sha384sums", kindShared, false},
	SHA512Checksums: {"sha512sums", kindShared, false},
}

var byLiteral = func() map[string]AnyFieldName {
	m := make(map[string]AnyFieldName, len(names))
	for i, n := range names {
		m[n.literal] = AnyFieldName(i)
	}
	return m
}()

// Lookup resolves a key to its field name.
// Keys are case-sensitive. Unknown keys report false.
func Lookup(key string) (AnyFieldName, bool) {
	n, ok := byLiteral[key]
	return n, ok
}

// All returns every field name in declaration order.
func All() []AnyFieldName {
	all := make([]AnyFieldName, count)
	for i := range all {
		all[i] = AnyFieldName(i)
	}
	return all
}

// Valid reports whether n is a declared field name.
func (n AnyFieldName) Valid() bool {
	return n < count
}

func (n AnyFieldName) String() string {
	if !n.Valid() {
		return fmt.Sprintf("AnyFieldName(%d)", uint8(n))
	}
	return names[n].literal
}

// Any returns n. It lets all four name types satisfy the same constraint.
func (n AnyFieldName) Any() AnyFieldName {
	return n
}

// IsHeader reports whether n switches or names a section rather than
// holding data inside one.
func (n AnyFieldName) IsHeader() bool {
	return n.Valid() && names[n].kind == kindHeader
}

// SingleValued reports whether n may be assigned at most once per section.
func (n AnyFieldName) SingleValued() bool {
	return n.Valid() && names[n].single
}

func (n AnyFieldName) in(kinds ...kind) bool {
	if !n.Valid() {
		return false
	}
	for _, k := range kinds {
		if names[n].kind == k {
			return true
		}
	}
	return false
}

// ToHeader narrows n to a header field name.
func (n AnyFieldName) ToHeader() (HeaderFieldName, error) {
	if !n.in(kindHeader) {
		return 0, &CastError{Name: n, Target: "header"}
	}
	return HeaderFieldName(n), nil
}

// ToBase narrows n to a pkgbase section field name.
func (n AnyFieldName) ToBase() (BaseFieldName, error) {
	if !n.in(kindBase, kindShared) {
		return 0, &CastError{Name: n, Target: "pkgbase"}
	}
	return BaseFieldName(n), nil
}

// ToDerivative narrows n to a pkgname section field name.
func (n AnyFieldName) ToDerivative() (DerivativeFieldName, error) {
	if !n.in(kindShared) {
		return 0, &CastError{Name: n, Target: "pkgname"}
	}
	return DerivativeFieldName(n), nil
}

// HeaderFieldName is pkgbase or pkgname.
type HeaderFieldName AnyFieldName

// Header field names.
const (
	HeaderBase = HeaderFieldName(Base)
	HeaderName = HeaderFieldName(Name)
)

func (n HeaderFieldName) Any() AnyFieldName { return AnyFieldName(n) }
func (n HeaderFieldName) String() string    { return n.Any().String() }

// BaseFieldName is a field name allowed in the pkgbase section.
type BaseFieldName AnyFieldName

func (n BaseFieldName) Any() AnyFieldName { return AnyFieldName(n) }
func (n BaseFieldName) String() string    { return n.Any().String() }

// ToDerivative narrows n to a pkgname section field name.
func (n BaseFieldName) ToDerivative() (DerivativeFieldName, error) {
	return n.Any().ToDerivative()
}

// DerivativeFieldName is a field name allowed in a pkgname section.
type DerivativeFieldName AnyFieldName

func (n DerivativeFieldName) Any() AnyFieldName { return AnyFieldName(n) }
func (n DerivativeFieldName) String() string    { return n.Any().String() }

// FieldName is the constraint satisfied by every field name type.
type FieldName interface {
	~uint8
	fmt.Stringer
	Any() AnyFieldName
}

// Parse resolves key and narrows it to F. It reports false for unknown keys
// and for keys outside F's subset.
func Parse[F FieldName](key string) (F, bool) {
	n, ok := Lookup(key)
	if !ok {
		return 0, false
	}
	return Narrow[F](n)
}

// Narrow converts n to F when n belongs to F's subset.
func Narrow[F FieldName](n AnyFieldName) (F, bool) {
	var zero F
	var err error
	switch any(zero).(type) {
	case AnyFieldName:
		if !n.Valid() {
			return zero, false
		}
	case HeaderFieldName:
		_, err = n.ToHeader()
	case BaseFieldName:
		_, err = n.ToBase()
	case DerivativeFieldName:
		_, err = n.ToDerivative()
	default:
		return zero, false
	}
	if err != nil {
		return zero, false
	}
	return F(n), true
}

// CastError is returned when a field name is outside the target subset.
// Name is the untouched input.
type CastError struct {
	Name   AnyFieldName
	Target string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("field %s is not a %s field", e.Name, e.Target)
}
