// Package urls builds links for packages described by a .SRCINFO file.
package urls

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/git-pkgs/srcinfo/internal/core"
)

// DefaultAURURL is the base URL of the Arch User Repository.
const DefaultAURURL = "https://aur.archlinux.org"

// URLBuilder constructs URLs for a package.
type URLBuilder interface {
	Registry(name, version string) string
	Download(name, version string) string
	Documentation(name, version string) string
	PURL(name, version string) string
}

// AUR builds aur.archlinux.org URLs. Names passed to Download and
// Documentation must be the pkgbase, since the AUR stores one git
// repository per pkgbase.
type AUR struct {
	baseURL string
}

// NewAUR returns a builder for the AUR at baseURL, or DefaultAURURL when
// baseURL is empty.
func NewAUR(baseURL string) *AUR {
	if baseURL == "" {
		baseURL = DefaultAURURL
	}
	return &AUR{baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (u *AUR) Registry(name, version string) string {
	return fmt.Sprintf("%s/packages/%s", u.baseURL, url.PathEscape(name))
}

func (u *AUR) Download(name, version string) string {
	return fmt.Sprintf("%s/cgit/aur.git/snapshot/%s.tar.gz", u.baseURL, url.PathEscape(name))
}

func (u *AUR) Documentation(name, version string) string {
	return fmt.Sprintf("%s/cgit/aur.git/tree/PKGBUILD?h=%s", u.baseURL, url.QueryEscape(name))
}

func (u *AUR) PURL(name, version string) string {
	return core.NewPURL(name, version, "").String()
}

// BuildURLs returns a map of all non-empty URLs for a package.
// Keys are "registry", "download", "docs", and "purl".
func BuildURLs(urls URLBuilder, name, version string) map[string]string {
	result := make(map[string]string)
	if v := urls.Registry(name, version); v != "" {
		result["registry"] = v
	}
	if v := urls.Download(name, version); v != "" {
		result["download"] = v
	}
	if v := urls.Documentation(name, version); v != "" {
		result["docs"] = v
	}
	if v := urls.PURL(name, version); v != "" {
		result["purl"] = v
	}
	return result
}

// ForDocument returns the URLs of every package in doc, keyed by package
// name. A document without pkgname sections yields its pkgbase only.
func ForDocument(urls URLBuilder, doc *core.Document) map[string]map[string]string {
	base := doc.Base()
	version := base.FullVersion()
	result := make(map[string]map[string]string)

	names := doc.DerivativeNames()
	if len(names) == 0 && base.Name() != "" {
		names = []string{base.Name()}
	}
	for _, name := range names {
		links := BuildURLs(urls, name, version)
		if pkgbase := base.Name(); pkgbase != "" {
			if v := urls.Download(pkgbase, version); v != "" {
				links["download"] = v
			}
			if v := urls.Documentation(pkgbase, version); v != "" {
				links["docs"] = v
			}
		}
		result[name] = links
	}
	return result
}
