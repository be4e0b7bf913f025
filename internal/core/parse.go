package core

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/git-pkgs/srcinfo/field"
	"github.com/git-pkgs/srcinfo/internal/tokenize"
)

// ParseResult is the return type of Parser.Parse.
type ParseResult = PartialResult[*Document]

// Parser turns .SRCINFO text into a Document.
// A Parser holds no state between calls and may be shared.
type Parser struct {
	logger      *log.Logger
	shrinkToFit bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used to report skipped lines, section
// switches and halts.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithShrinkToFit controls whether finished sections release spare slice
// capacity. Enabled by default.
func WithShrinkToFit(enabled bool) Option {
	return func(p *Parser) {
		p.shrinkToFit = enabled
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:      log.NewWithOptions(io.Discard, log.Options{Prefix: "srcinfo"}),
		shrinkToFit: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses text. Unknown keys and empty values are skipped. A line
// without '=' or a second assignment to a single-valued field stops the
// parse; the result then carries everything read before that line.
//
// Stored values are sub-slices of text.
func (p *Parser) Parse(text string) ParseResult {
	doc := newDocument()
	current := Section{}
	writer := doc.section(current)

	for number, line := range tokenize.Lines(text) {
		key, value, ok := tokenize.SplitLine(line)
		if !ok {
			p.logger.Warn("stopping at invalid line", "line", number, "text", line)
			return NewPartial(doc, &InvalidLineError{Line: line, Number: number})
		}

		name, known := field.Lookup(key)
		if !known {
			p.logger.Debug("skipping unknown field", "line", number, "field", key, "section", current)
			continue
		}
		if value == "" {
			p.logger.Debug("skipping empty value", "line", number, "field", key, "section", current)
			continue
		}

		outcome := writer.add(name, value)
		switch {
		case outcome.err != nil:
			outcome.err.Section = current
			p.logger.Warn("stopping at duplicate field", "line", number, "field", key, "section", current)
			return NewPartial(doc, outcome.err)
		case outcome.header != "":
			if p.shrinkToFit {
				writer.shrinkToFit()
			}
			current = Section{Name: outcome.header}
			writer = doc.section(current)
			p.logger.Debug("entering section", "line", number, "section", current)
		case outcome.skipped:
			p.logger.Debug("skipping field outside section", "line", number, "field", key, "section", current)
		}
	}

	if p.shrinkToFit {
		writer.shrinkToFit()
	}
	return NewComplete(doc)
}

var defaultParser = NewParser()

// Parse parses text with a default Parser.
func Parse(text string) ParseResult {
	return defaultParser.Parse(text)
}
