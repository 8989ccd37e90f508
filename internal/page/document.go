// Package page models a rendered document and applies display preferences to
// its terminal presentation.
package page

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// BlockKind identifies a top-level document block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockImage
)

// Span is a run of inline text, optionally a link or emphasized.
type Span struct {
	Text   string
	URL    string // non-empty for links
	Italic bool
}

// Block is a heading, paragraph, or image.
type Block struct {
	Kind  BlockKind
	Level int    // heading level, 1 or 2
	Alt   string // image alt text
	URL   string // image source
	Spans []Span
}

// Document is a parsed page.
type Document struct {
	Blocks []Block
}

var (
	imageLineRe = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	inlineRe    = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)|\*([^*]+)\*`)
)

// Parse reads a lightweight markdown subset: #/## headings, paragraphs
// separated by blank lines, [text](url) links, *emphasis*, and standalone
// ![alt](url) image lines.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		text := strings.Join(paragraph, " ")
		doc.Blocks = append(doc.Blocks, Block{
			Kind:  BlockParagraph,
			Spans: parseSpans(text),
		})
		paragraph = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			flush()
		case imageLineRe.MatchString(line):
			flush()
			m := imageLineRe.FindStringSubmatch(line)
			doc.Blocks = append(doc.Blocks, Block{Kind: BlockImage, Alt: m[1], URL: m[2]})
		case strings.HasPrefix(line, "## "):
			flush()
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockHeading,
				Level: 2,
				Spans: parseSpans(strings.TrimPrefix(line, "## ")),
			})
		case strings.HasPrefix(line, "# "):
			flush()
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  BlockHeading,
				Level: 1,
				Spans: parseSpans(strings.TrimPrefix(line, "# ")),
			})
		default:
			paragraph = append(paragraph, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	flush()

	return doc, nil
}

func parseSpans(text string) []Span {
	var spans []Span
	rest := text

	for rest != "" {
		loc := inlineRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			spans = append(spans, Span{Text: rest})
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		if loc[2] >= 0 { // link
			spans = append(spans, Span{
				Text: rest[loc[2]:loc[3]],
				URL:  rest[loc[4]:loc[5]],
			})
		} else { // emphasis
			spans = append(spans, Span{
				Text:   rest[loc[6]:loc[7]],
				Italic: true,
			})
		}
		rest = rest[loc[1]:]
	}

	return spans
}

// PlainText flattens the block's spans without presentation.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
