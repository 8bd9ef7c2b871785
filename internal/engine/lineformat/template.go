// Package lineformat renders machine-file lines from a "%"-token template.
//
// Supported tokens:
//
//	%%       literal percent sign
//	%h       host name
//	%c       task count
//	%C       task count, omitted when the count is 1 or less
//	%[:]c    task count preceded by the delimiter between the brackets
//	%[:]C    as %[:]c, omitted when the count is 1 or less
//
// A delimiter is one or more characters from the set -_:;.,/\| or whitespace.
// "%%c" is a literal "%c", not a count token: a template whose only count
// appears that way has no count token, so its line is repeated once per task.
// Any other "%"-prefixed character, and a trailing lone "%", renders nothing.
package lineformat

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind tags a template token.
type Kind int

const (
	// Literal is text copied verbatim.
	Literal Kind = iota
	// Percent is "%%".
	Percent
	// Host is "%h".
	Host
	// Count is "%c".
	Count
	// CountIfPlural is "%C".
	CountIfPlural
	// DelimCount is "%[delim]c".
	DelimCount
	// DelimCountIfPlural is "%[delim]C".
	DelimCountIfPlural
)

// Token is one element of a parsed template. Text holds the literal text or
// the delimiter of a delimited count token.
type Token struct {
	Kind Kind
	Text string
}

// Template is a parsed line format. It is immutable and safe to reuse.
type Template struct {
	format   string
	tokens   []Token
	hasCount bool
}

// Parse scans format once into tokens. An unterminated "%[" or a delimiter
// outside the allowed character class is reported as
// domain.ErrMalformedDelimiter.
func Parse(format string) (*Template, error) {
	t := &Template{format: format}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}
	emit := func(tok Token) {
		flush()
		t.tokens = append(t.tokens, tok)
		switch tok.Kind {
		case Count, CountIfPlural, DelimCount, DelimCountIfPlural:
			t.hasCount = true
		}
	}

	for i := 0; i < len(format); {
		if format[i] != '%' {
			lit.WriteByte(format[i])
			i++
			continue
		}
		i++
		if i >= len(format) {
			break
		}
		switch format[i] {
		case '%':
			emit(Token{Kind: Percent})
		case 'h':
			emit(Token{Kind: Host})
		case 'c':
			emit(Token{Kind: Count})
		case 'C':
			emit(Token{Kind: CountIfPlural})
		case '[':
			start := i + 1
			end := strings.IndexByte(format[start:], ']')
			if end < 0 {
				return nil, malformed(format, i-1)
			}
			end += start
			delim := format[start:end]
			if !validDelimiter(delim) {
				return nil, malformed(format, i-1)
			}
			i = end + 1
			if i >= len(format) {
				continue
			}
			switch format[i] {
			case 'c':
				emit(Token{Kind: DelimCount, Text: delim})
			case 'C':
				emit(Token{Kind: DelimCountIfPlural, Text: delim})
			}
		}
		i++
	}
	flush()

	return t, nil
}

// HasCountToken reports whether the template contains a count token, which
// decides between single-pass and repeat rendering.
func (t *Template) HasCountToken() bool {
	return t.hasCount
}

// Tokens returns a copy of the parsed tokens.
func (t *Template) Tokens() []Token {
	return append([]Token(nil), t.tokens...)
}

// String returns the original format.
func (t *Template) String() string {
	return t.format
}

// Render writes the lines for one host. When the template has a count token,
// or noRepeats is set, a single line is written with every token substituted.
// Otherwise the line is written count times, expressing the count by
// repetition.
func (t *Template) Render(w io.Writer, host string, count int, noRepeats bool) error {
	if t.hasCount || noRepeats {
		return t.writeLine(w, host, count)
	}
	for range max(count, 0) {
		if err := t.writeLine(w, host, count); err != nil {
			return err
		}
	}
	return nil
}

func (t *Template) writeLine(w io.Writer, host string, count int) error {
	var b strings.Builder
	for _, tok := range t.tokens {
		switch tok.Kind {
		case Literal:
			b.WriteString(tok.Text)
		case Percent:
			b.WriteByte('%')
		case Host:
			b.WriteString(host)
		case Count:
			b.WriteString(strconv.Itoa(count))
		case CountIfPlural:
			if count > 1 {
				b.WriteString(strconv.Itoa(count))
			}
		case DelimCount:
			b.WriteString(tok.Text)
			b.WriteString(strconv.Itoa(count))
		case DelimCountIfPlural:
			if count > 1 {
				b.WriteString(tok.Text)
				b.WriteString(strconv.Itoa(count))
			}
		}
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, domain.ErrWriteFailed.Error())
	}
	return nil
}

func validDelimiter(delim string) bool {
	if delim == "" {
		return false
	}
	for _, r := range delim {
		if !strings.ContainsRune(`-_:;.,/\|`, r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func malformed(format string, offset int) error {
	err := zerr.With(domain.ErrMalformedDelimiter, "offset", offset)
	return zerr.With(err, "format", format)
}
