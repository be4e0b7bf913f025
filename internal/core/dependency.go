package core

import (
	"strings"

	"github.com/git-pkgs/srcinfo/field"
)

// Dependency represents a package dependency.
type Dependency struct {
	Name         string
	Requirements string // ">=2.38", "=1.0-1", or ""
	Scope        Scope
	Optional     bool
	Description  string // optdepends only
}

// Scope indicates when a dependency is required.
// Aligns with github.com/git-pkgs/registries core.Scope.
type Scope string

const (
	Runtime  Scope = "runtime"
	Test     Scope = "test"
	Build    Scope = "build"
	Optional Scope = "optional"
)

// Valuer is implemented by both section types.
type Valuer interface {
	Get(name field.AnyFieldName) []string
}

var dependencyFields = []struct {
	name  field.AnyFieldName
	scope Scope
}{
	{field.Dependencies, Runtime},
	{field.MakeDependencies, Build},
	{field.CheckDependencies, Test},
	{field.OptionalDependencies, Optional},
}

// Dependencies lists the dependencies declared directly in s, in the order
// depends, makedepends, checkdepends, optdepends. Values are split but not
// validated.
func Dependencies(s Valuer) []Dependency {
	var deps []Dependency
	for _, f := range dependencyFields {
		for _, value := range s.Get(f.name) {
			deps = append(deps, parseDependency(value, f.scope))
		}
	}
	return deps
}

// parseDependency splits "name>=1.0" or, for optdepends, "name: why".
func parseDependency(value string, scope Scope) Dependency {
	dep := Dependency{Scope: scope, Optional: scope == Optional}

	target := value
	if scope == Optional {
		if before, after, ok := strings.Cut(value, ": "); ok {
			target = strings.TrimSpace(before)
			dep.Description = strings.TrimSpace(after)
		}
	}

	if i := strings.IndexAny(target, "<>="); i >= 0 {
		dep.Name = strings.TrimSpace(target[:i])
		dep.Requirements = strings.TrimSpace(target[i:])
	} else {
		dep.Name = target
	}
	return dep
}
