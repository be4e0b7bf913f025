package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pkgs/srcinfo/field"
)

const sampleSrcinfo = `pkgbase = linux
	pkgdesc = The Linux kernel and modules
	pkgver = 6.6.1.arch1
	pkgrel = 1
	url = https://github.com/archlinux/linux
	arch = x86_64
	license = GPL-2.0-only
	makedepends = bc
	makedepends = cpio
	options = !debug
	source = https://cdn.kernel.org/pub/linux/kernel/v6.x/linux-6.6.1.tar.xz
	source = config
	validpgpkeys = ABAF11C65A2970B130ABE3C479BE3E4300411886
	validpgpkeys = 647F28654894E3BD457199BE38DBBDC86092693E
	sha256sums = 4ac8a2c5a3d1fe1d5ac7d07c3b0c2d0fca2d6f1f5b31bd0d1c0f6b23b67f5ef3
	sha256sums = SKIP

pkgname = linux
	pkgdesc = The Linux kernel and modules
	depends = coreutils
	depends = kmod
	optdepends = wireless-regdb: to set the correct wireless channels of your country
	provides = KSMBD-MODULE

pkgname = linux-headers
	pkgdesc = Headers and scripts for building modules for the Linux kernel
	depends = pahole
`

func TestParseComplete(t *testing.T) {
	res := Parse(sampleSrcinfo)
	require.True(t, res.IsComplete())
	require.NoError(t, res.Err())

	doc := res.Parsed()
	base := doc.Base()
	assert.Equal(t, "linux", base.Name())
	assert.Equal(t, "6.6.1.arch1", base.Version())
	assert.Equal(t, "1", base.Release())
	assert.Equal(t, "", base.Epoch())
	assert.Equal(t, "6.6.1.arch1-1", base.FullVersion())
	assert.Equal(t, []string{"bc", "cpio"}, base.Get(field.MakeDependencies))
	assert.Equal(t, []string{
		"ABAF11C65A2970B130ABE3C479BE3E4300411886",
		"647F28654894E3BD457199BE38DBBDC86092693E",
	}, base.Get(field.ValidPGPKeys))
	assert.Equal(t, []string{"4ac8a2c5a3d1fe1d5ac7d07c3b0c2d0fca2d6f1f5b31bd0d1c0f6b23b67f5ef3", "SKIP"}, base.Get(field.SHA256Checksums))

	assert.Equal(t, []string{"linux", "linux-headers"}, doc.DerivativeNames())

	linux, ok := doc.Derivative("linux")
	require.True(t, ok)
	assert.Equal(t, "linux", linux.Name())
	assert.Equal(t, []string{"coreutils", "kmod"}, linux.Get(field.Dependencies))
	assert.Equal(t, []string{"KSMBD-MODULE"}, linux.Get(field.Provides))
	assert.Nil(t, linux.Get(field.MakeDependencies))

	headers, ok := doc.Derivative("linux-headers")
	require.True(t, ok)
	assert.Equal(t, []string{"pahole"}, headers.Get(field.Dependencies))
}

func TestParseDerivativeOrder(t *testing.T) {
	text := "pkgbase = x\npkgver = 1\npkgname = zeta\npkgname = alpha\npkgname = mid\n"
	doc := Parse(text).Parsed()
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, doc.DerivativeNames())

	var names []string
	for name, s := range doc.Derivatives() {
		assert.Equal(t, name, s.Name())
		names = append(names, name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestParseVersionSetTwice(t *testing.T) {
	text := "pkgbase = foo\npkgver = 1.0\npkgrel = 1\npkgver = 2.0\narch = any\n"
	res := Parse(text)
	require.False(t, res.IsComplete())

	var setErr *AlreadySetError
	require.ErrorAs(t, res.Err(), &setErr)
	assert.ErrorIs(t, res.Err(), ErrAlreadySet)
	assert.True(t, setErr.Section.IsBase())
	assert.Equal(t, field.Version, setErr.Field)
	assert.Equal(t, "1.0", setErr.Previous)
	assert.Equal(t, "2.0", setErr.Value)
	assert.Equal(t,
		`failed to insert value to the pkgbase section: pkgver is already set to "1.0", cannot set it to "2.0"`,
		setErr.Error())

	base := res.Parsed().Base()
	assert.Equal(t, "1.0", base.Version())
	assert.Equal(t, "1", base.Release())
	assert.Nil(t, base.Get(field.Architecture), "lines after the halt must not be read")
}

func TestParsePkgbaseSetTwice(t *testing.T) {
	text := "pkgbase = foo\npkgbase = bar\n"
	res := Parse(text)
	var setErr *AlreadySetError
	require.ErrorAs(t, res.Err(), &setErr)
	assert.Equal(t, field.Base, setErr.Field)
	assert.Equal(t, "foo", setErr.Previous)
	assert.Equal(t, "bar", setErr.Value)
	assert.Equal(t, "foo", res.Parsed().Base().Name())
}

func TestParseUnknownFieldIgnored(t *testing.T) {
	text := "pkgbase = foo\nfrobnicate = yes\npkgver = 1\npkgname = foo\nfrobnicate = again\ndepends = bar\n"
	res := Parse(text)
	require.True(t, res.IsComplete())

	doc := res.Parsed()
	assert.Equal(t, 1, doc.Base().Len())
	assert.Equal(t, "1", doc.Base().Version())
	foo, ok := doc.Derivative("foo")
	require.True(t, ok)
	assert.Equal(t, 1, foo.Len())
	assert.Equal(t, []string{"bar"}, foo.Get(field.Dependencies))
}

func TestParseBaseOnlyFieldInDerivativeIgnored(t *testing.T) {
	text := "pkgbase = foo\npkgver = 1\npkgname = foo\npkgver = 2\npkgbase = other\n"
	res := Parse(text)
	require.True(t, res.IsComplete())

	doc := res.Parsed()
	assert.Equal(t, "1", doc.Base().Version())
	assert.Equal(t, "foo", doc.Base().Name())
	foo, _ := doc.Derivative("foo")
	assert.Equal(t, 0, foo.Len())
}

func TestParseEmptyValueIgnored(t *testing.T) {
	text := "pkgbase = foo\npkgver =\npkgver = 3\npkgname =\ndepends = x\n"
	res := Parse(text)
	require.True(t, res.IsComplete())

	doc := res.Parsed()
	assert.Equal(t, "3", doc.Base().Version())
	assert.Equal(t, 0, doc.Len(), "an empty pkgname must not open a section")
	assert.Equal(t, []string{"x"}, doc.Base().Get(field.Dependencies))
}

func TestParseInvalidLine(t *testing.T) {
	text := "pkgbase = foo\npkgver = 1\npkgname = foo\ndepends = bar\n  this line is broken  \nprovides = baz\n"
	res := Parse(text)
	require.False(t, res.IsComplete())

	var lineErr *InvalidLineError
	require.ErrorAs(t, res.Err(), &lineErr)
	assert.ErrorIs(t, res.Err(), ErrInvalidLine)
	assert.Equal(t, "this line is broken", lineErr.Line)
	assert.Equal(t, 5, lineErr.Number)
	assert.Equal(t, `invalid line 5: "this line is broken"`, lineErr.Error())

	doc := res.Parsed()
	assert.Equal(t, "1", doc.Base().Version())
	foo, ok := doc.Derivative("foo")
	require.True(t, ok)
	assert.Equal(t, []string{"bar"}, foo.Get(field.Dependencies))
	assert.Nil(t, foo.Get(field.Provides))
}

func TestParseMultiValuedKeepsDuplicates(t *testing.T) {
	text := "pkgbase = foo\ndepends = a>=1\ndepends = b\ndepends = a>=1\n"
	doc := Parse(text).Parsed()
	assert.Equal(t, []string{"a>=1", "b", "a>=1"}, doc.Base().Get(field.Dependencies))
}

func TestParseRepeatedHeaderMerges(t *testing.T) {
	text := `pkgbase = foo
pkgname = foo
depends = a
pkgname = foo-docs
depends = doc
pkgname = foo
depends = b
conflicts = c
`
	res := Parse(text)
	require.True(t, res.IsComplete())

	doc := res.Parsed()
	assert.Equal(t, []string{"foo", "foo-docs"}, doc.DerivativeNames())
	foo, _ := doc.Derivative("foo")
	assert.Equal(t, []string{"a", "b"}, foo.Get(field.Dependencies))
	assert.Equal(t, []string{"c"}, foo.Get(field.Conflicts))
}

func TestParseCursorNeverReturnsToBase(t *testing.T) {
	text := "pkgbase = foo\npkgname = foo\nlicense = MIT\n"
	doc := Parse(text).Parsed()
	assert.Nil(t, doc.Base().Get(field.License))
	foo, _ := doc.Derivative("foo")
	assert.Equal(t, []string{"MIT"}, foo.Get(field.License))
}

func TestParseIdempotent(t *testing.T) {
	first := Parse(sampleSrcinfo)
	second := Parse(sampleSrcinfo)
	assert.Equal(t, first.Err(), second.Err())
	assert.Equal(t, first.Parsed(), second.Parsed())

	broken := sampleSrcinfo + "oops\n"
	assert.Equal(t, Parse(broken), Parse(broken))
}

func TestParseValuesShareInput(t *testing.T) {
	text := "pkgbase = foo\npkgver = 1.2.3\n"
	v := Parse(text).Parsed().Base().Version()
	require.Equal(t, "1.2.3", v)

	start := uintptr(unsafe.Pointer(unsafe.StringData(text)))
	p := uintptr(unsafe.Pointer(unsafe.StringData(v)))
	assert.True(t, p >= start && p+uintptr(len(v)) <= start+uintptr(len(text)),
		"stored value should point into the input")
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("")
	require.True(t, res.IsComplete())
	assert.Equal(t, 0, res.Parsed().Len())
	assert.Equal(t, "", res.Parsed().Base().Name())
}

func TestParserLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := NewParser(WithLogger(logger))

	res := p.Parse("pkgbase = foo\nmystery = 1\npkgname = foo\nbroken\n")
	require.Error(t, res.Err())

	out := buf.String()
	assert.Contains(t, out, "skipping unknown field")
	assert.Contains(t, out, "entering section")
	assert.Contains(t, out, "stopping at invalid line")
}

func TestParserWithoutShrink(t *testing.T) {
	p := NewParser(WithShrinkToFit(false), WithLogger(nil))
	res := p.Parse(sampleSrcinfo)
	require.True(t, res.IsComplete())
	assert.Equal(t, Parse(sampleSrcinfo).Parsed(), res.Parsed())
}

func TestPartialResult(t *testing.T) {
	complete := NewComplete(3)
	assert.True(t, complete.IsComplete())
	assert.Equal(t, 3, complete.Parsed())
	v, err := complete.Result()
	assert.Equal(t, 3, v)
	assert.NoError(t, err)

	boom := errors.New("boom")
	partial := NewPartial(2, boom)
	assert.False(t, partial.IsComplete())
	assert.Equal(t, 2, partial.Parsed())
	assert.Same(t, boom, partial.Err())
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "pkgbase", Section{}.String())
	assert.Equal(t, "pkgname foo", Section{Name: "foo"}.String())
}

func TestAlreadySetErrorDerivativeMessage(t *testing.T) {
	err := &AlreadySetError{Section: Section{Name: "foo"}, Field: field.Version, Previous: "1", Value: "2"}
	assert.True(t, strings.HasPrefix(err.Error(), "failed to insert value to the pkgname section named foo: "))
}
