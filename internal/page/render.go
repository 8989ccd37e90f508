package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loupedev/loupe/internal/prefs"
	"github.com/loupedev/loupe/internal/ui"
)

const minContentWidth = 24

// Renderer turns a Document into styled terminal output. It implements
// prefs.Environment: the preference fields are pushed in by the controller
// and reflected on the next Render call. Rendering the same state twice
// yields identical output.
type Renderer struct {
	width          int
	textSize       int
	highlightLinks bool
	readableFont   bool
	imagesHidden   bool
}

// NewRenderer returns a renderer at the default preferences and 80 columns.
func NewRenderer() *Renderer {
	def := prefs.Defaults()
	return &Renderer{
		width:          80,
		textSize:       def.FontSize,
		highlightLinks: def.HighlightLinks,
		readableFont:   def.ReadableFont,
		imagesHidden:   def.HideImages,
	}
}

// SetWidth sets the terminal width used for wrapping.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// SetTextSize implements prefs.Environment.
func (r *Renderer) SetTextSize(size int) { r.textSize = size }

// SetLinkHighlight implements prefs.Environment.
func (r *Renderer) SetLinkHighlight(on bool) { r.highlightLinks = on }

// SetReadableFont implements prefs.Environment.
func (r *Renderer) SetReadableFont(on bool) { r.readableFont = on }

// SetImagesHidden implements prefs.Environment.
func (r *Renderer) SetImagesHidden(on bool) { r.imagesHidden = on }

// zoom maps the 12–24 font size onto 0–6 presentation steps.
func (r *Renderer) zoom() int {
	return (r.textSize - prefs.FontSizeMin) / prefs.FontSizeStep
}

// Render produces the styled page.
func (r *Renderer) Render(doc *Document) string {
	indent := strings.Repeat(" ", r.zoom())
	contentWidth := r.width - 2*r.zoom()
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}

	var blocks []string
	for _, b := range doc.Blocks {
		rendered, ok := r.renderBlock(b, contentWidth)
		if !ok {
			continue
		}
		blocks = append(blocks, indentLines(rendered, indent))
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (r *Renderer) renderBlock(b Block, width int) (string, bool) {
	switch b.Kind {
	case BlockHeading:
		style := lipgloss.NewStyle().Bold(true).Foreground(ui.Primary)
		if b.Level > 1 {
			style = lipgloss.NewStyle().Bold(true).Foreground(ui.Secondary)
		}
		return style.Render(b.PlainText()), true

	case BlockImage:
		if r.imagesHidden {
			return "", false
		}
		label := "[image]"
		if b.Alt != "" {
			label = "[image: " + b.Alt + "]"
		}
		return lipgloss.NewStyle().Foreground(ui.Muted).Render(label), true

	default:
		text := r.renderSpans(b.Spans)
		wrapped := lipgloss.NewStyle().Width(width).Render(text)
		if r.readableFont {
			wrapped = strings.ReplaceAll(wrapped, "\n", "\n\n")
		}
		return wrapped, true
	}
}

func (r *Renderer) renderSpans(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch {
		case s.URL != "":
			if r.highlightLinks {
				link := lipgloss.NewStyle().Underline(true).Foreground(ui.Accent)
				sb.WriteString(link.Render(s.Text))
				sb.WriteString(lipgloss.NewStyle().Foreground(ui.Muted).Render(" (" + s.URL + ")"))
			} else {
				sb.WriteString(s.Text)
			}
		case s.Italic && !r.readableFont:
			sb.WriteString(lipgloss.NewStyle().Italic(true).Render(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

func indentLines(s, indent string) string {
	if indent == "" || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}
