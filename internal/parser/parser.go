// Package parser converts a markdown note into an ordered sequence of Docs
// edit requests plus a verbatim footer block.
//
// The parser is a single-pass line scanner. It tracks the next insertion
// offset (the cursor, starting at 1 because position 0 is the document's
// non-insertable anchor) and a structural mode: plain text, inside a list
// run, or inside the footer. Offsets emitted for later lines depend on the
// bookkeeping done for earlier ones, so the per-line steps run in a fixed
// priority order. Malformed markdown is never an error; unrecognized lines
// degrade to plain text. A Parser holds mutable state and must not be shared
// across goroutines; use one Parser per input.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/valpere/notedoc/internal/ops"
)

var (
	// leading whitespace, "-" or "*" plus space, optional "[ ] " checkbox
	// marker, remaining text
	listRe    = regexp.MustCompile(`^(\s*)[-*] (\[ \] )?(.*)$`)
	headingRe = regexp.MustCompile(`^(#+)\s(.*)$`)
	tagRe     = regexp.MustCompile(`@\w*:`)
	footerRe  = regexp.MustCompile(`^-{3,}$`)
)

// mode is the parser's structural context. Only the list variant carries
// state, so the other two cannot expose stale list fields.
type mode interface{ isMode() }

type modeNone struct{}

// modeFooter is terminal: every later non-blank line is footer content.
type modeFooter struct{}

// modeList is an open run of contiguous list lines.
type modeList struct {
	start   int64  // cursor value where the run began
	indents int64  // indentation tabs inserted so far across the run
	preset  string // bullet preset, fixed by the first line of the run
}

func (modeNone) isMode()   {}
func (modeFooter) isMode() {}
func (modeList) isMode()   {}

// Parser accumulates edit requests and footer text over one input stream.
type Parser struct {
	cursor   int64
	mode     mode
	requests []ops.Request
	footer   strings.Builder
}

func New() *Parser {
	return &Parser{cursor: 1, mode: modeNone{}}
}

// ParseFile opens path and translates its contents. The file is closed
// before ParseFile returns, including on read failure.
func (p *Parser) ParseFile(path string) ([]ops.Request, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open note: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse consumes r line by line and returns the ordered edit requests and
// the accumulated footer text. The only failure mode is a read error; the
// partially built output is discarded in that case. Lines may be arbitrarily
// long.
func (p *Parser) Parse(r io.Reader) ([]ops.Request, string, error) {
	br := bufio.NewReader(r)
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, "", fmt.Errorf("failed to read note: %w", readErr)
		}
		line = strings.TrimSuffix(line, "\n")
		if strings.TrimSpace(line) != "" {
			if _, ok := p.mode.(modeFooter); ok {
				p.footer.WriteString(line)
				p.footer.WriteByte('\n')
			} else {
				p.parseLine(line)
			}
		}
		if readErr != nil {
			break
		}
	}

	// An input ending inside a list still needs its bullet-format request.
	if lm, ok := p.mode.(modeList); ok {
		p.endList(lm)
	}

	return p.requests, p.footer.String(), nil
}

// parseLine runs the per-line steps in priority order: footer delimiter,
// list item, heading, tag, cursor advance.
func (p *Parser) parseLine(line string) {
	if p.checkFooter(line) {
		return
	}

	working := p.parseListItem(line)
	working = p.parseHeading(working)

	p.parseTag(working)

	// Inserted spans (list lines carry their newline, headings account for
	// theirs via the +1 in parseHeading) and plain text both advance the
	// cursor by their character count. Backslash escapes are a zero-width
	// authoring convenience and never occupy a position.
	p.cursor += charLen(strings.ReplaceAll(working, `\`, ""))
}

// checkFooter reports whether line is the footer delimiter (three or more
// hyphens and nothing else). The delimiter closes any open list at the
// pre-delimiter cursor and switches the parser to footer mode; the line
// itself is not content.
func (p *Parser) checkFooter(line string) bool {
	if !footerRe.MatchString(line) {
		return false
	}
	if lm, ok := p.mode.(modeList); ok {
		p.endList(lm)
	}
	p.mode = modeFooter{}
	return true
}

// parseListItem handles a list line and returns the rewritten working line.
// A non-list line closes any open run and passes through unchanged.
func (p *Parser) parseListItem(line string) string {
	m := listRe.FindStringSubmatch(line)
	if m == nil {
		if lm, ok := p.mode.(modeList); ok {
			p.endList(lm)
		}
		return line
	}
	indentSpaces, checkbox, text := m[1], m[2], m[3]

	lm, open := p.mode.(modeList)
	if !open {
		preset := ops.BulletDisc
		if checkbox != "" {
			preset = ops.BulletCheckbox
		}
		lm = modeList{start: p.cursor, preset: preset}
	}

	// Two leading spaces per level; tabs render the nesting in the document
	// but are stripped back out of the cursor when the run closes.
	level := int64(utf8.RuneCountInString(indentSpaces)) / 2
	lm.indents += level
	p.mode = lm

	rewritten := strings.Repeat("\t", int(level)) + text + "\n"
	p.requests = append(p.requests, ops.NewInsertText(p.cursor, rewritten))
	return rewritten
}

// parseHeading handles a "# ..." line: the heading text is inserted with its
// newline, the named style covers the text only, and the cursor reserves one
// position for the structural break so following content starts on the next
// line. Returns the heading text as the working line.
func (p *Parser) parseHeading(line string) string {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	level, text := len(m[1]), m[2]

	p.requests = append(p.requests,
		ops.NewInsertText(p.cursor, text+"\n"),
		ops.NewUpdateParagraphStyle(p.cursor, p.cursor+charLen(text), ops.NamedStyleHeading(level)),
	)
	p.cursor++

	return text
}

// parseTag bolds the first "@word:" occurrence, excluding the colon. The
// working line and cursor are left untouched.
func (p *Parser) parseTag(line string) {
	loc := tagRe.FindStringIndex(line)
	if loc == nil {
		return
	}
	start := charLen(line[:loc[0]])
	end := charLen(line[:loc[1]])
	p.requests = append(p.requests, ops.NewBoldTextStyle(p.cursor+start, p.cursor+end-1))
}

// endList emits the bullet-format request for the finished run and removes
// the run's indentation tabs from the cursor: the tabs shifted insertion
// offsets while the list was being written, but they do not occupy positions
// in the addressing used by content after the list.
func (p *Parser) endList(lm modeList) {
	p.requests = append(p.requests, ops.NewCreateParagraphBullets(lm.start, p.cursor, lm.preset))
	p.cursor -= lm.indents
	p.mode = modeNone{}
}

// charLen counts characters, not bytes; all offsets emitted for the Docs
// consumer are character offsets.
func charLen(s string) int64 {
	return int64(utf8.RuneCountInString(s))
}
