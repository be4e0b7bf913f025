package core

import (
	"github.com/git-pkgs/purl"

	"github.com/git-pkgs/srcinfo/field"
)

// ecosystem is the purl ecosystem name for Arch packages. purl maps it to
// the alpm type and the arch namespace.
const ecosystem = "arch"

// NewPURL builds an alpm Package URL. version and arch may be empty.
func NewPURL(name, version, arch string) *purl.PURL {
	p := purl.MakePURL(ecosystem, name, version)
	if arch != "" {
		p = p.WithQualifier("arch", arch)
	}
	return p
}

// PURL returns the Package URL of the package called name. An empty name
// means the pkgbase. The version comes from the pkgbase section, which is
// the only section that may declare one. The arch qualifier is set when the
// package's own section lists exactly one architecture.
func (d *Document) PURL(name string) (*purl.PURL, error) {
	var arches []string
	if s, ok := d.derivatives[name]; ok {
		arches = s.Get(field.Architecture)
	} else {
		if name != "" && name != d.base.name {
			return nil, &NotFoundError{Name: name}
		}
		if d.base.name == "" {
			return nil, &NotFoundError{Name: field.Base.String()}
		}
		name = d.base.name
		arches = d.base.Get(field.Architecture)
	}

	arch := ""
	if len(arches) == 1 {
		arch = arches[0]
	}
	return NewPURL(name, d.base.FullVersion(), arch), nil
}
