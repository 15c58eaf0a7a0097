// internal/console/render.go
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ammerola/stockroom/internal/core/domain"
)

var (
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
)

// Renderer formats console output, optionally with colour
type Renderer struct {
	color bool
	pass  lipgloss.Style
	fail  lipgloss.Style
	title lipgloss.Style
	muted lipgloss.Style
}

// NewRenderer creates a renderer whose colour profile is detected from w
func NewRenderer(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		color: color,
		pass:  r.NewStyle().Foreground(success),
		fail:  r.NewStyle().Foreground(danger),
		title: r.NewStyle().Bold(true).Foreground(accent),
		muted: r.NewStyle().Foreground(dim),
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// Outcome renders the message of an operation outcome
func (r *Renderer) Outcome(o domain.Outcome) string {
	if o.OK() {
		return r.style(r.pass, o.Message)
	}
	return r.style(r.fail, o.Message)
}

// Error renders a presentation-level failure message
func (r *Renderer) Error(msg string) string {
	return r.style(r.fail, msg)
}

// Menu renders the list of available commands
func (r *Renderer) Menu() string {
	var b strings.Builder
	b.WriteString(r.style(r.title, "Inventory Management"))
	b.WriteString("\n")
	for _, item := range menu {
		fmt.Fprintf(&b, "%s. %s\n", item.key, item.label)
	}
	return b.String()
}

// Products renders the stored products one per line
func (r *Renderer) Products(products []domain.Product) string {
	if len(products) == 0 {
		return r.style(r.muted, "No products in inventory.")
	}

	var b strings.Builder
	for i, p := range products {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "ID: %d, Name: %s, Quantity: %d, Price: %s",
			p.ID, p.Name, p.QuantityInStock, p.Price.String())
	}
	return b.String()
}
