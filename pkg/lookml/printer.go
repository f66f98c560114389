// Package lookml serializes view definitions and explores into LookML text.
// The engine treats this package as its serializer collaborator: it hands in
// an in-memory structure and receives bytes back.
package lookml

import (
	"bytes"
	"strings"
)

const indentSize = 2

// printer handles LookML emission with proper indentation and quoting.
type printer struct {
	output      bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *printer {
	return &printer{atLineStart: true}
}

// Bytes returns the emitted output with exactly one trailing newline.
func (p *printer) Bytes() []byte {
	return append(bytes.TrimRight(p.output.Bytes(), "\n"), '\n')
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

// line emits one full line.
func (p *printer) line(s string) {
	p.write(s)
	p.writeln()
}

// param emits `key: value`.
func (p *printer) param(key, value string) {
	p.line(key + ": " + value)
}

// quoted emits `key: "value"` with quote escaping.
func (p *printer) quoted(key, value string) {
	p.line(key + ": " + quote(value))
}

// sql emits `key: expr ;;`.
func (p *printer) sql(key, expr string) {
	p.line(key + ": " + expr + " ;;")
}

// block emits `kind: name {`, runs body, and closes the brace.
func (p *printer) block(kind, name string, body func()) {
	p.line(kind + ": " + name + " {")
	p.depth++
	body()
	p.depth--
	p.line("}")
}

// quoteEscaper escapes backslashes and quotes, and folds line breaks into
// spaces: a quoted LookML string must stay on one line.
var quoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
