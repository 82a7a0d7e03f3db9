package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer formats user-facing messages. Colors are dropped automatically
// when the destination is not a terminal.
type Renderer struct {
	styles styles
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{styles: newStyles(lipgloss.NewRenderer(w))}
}

func (r *Renderer) Copied(service string) string {
	return fmt.Sprintf("Password for %s copied.", r.styles.service.Render(service))
}

func (r *Renderer) NotCopied(service string) string {
	return r.styles.detail.Render(fmt.Sprintf("Password for %s generated.", service))
}

func (r *Renderer) Warning(message string) string {
	return r.styles.warning.Render(message)
}

func (r *Renderer) Services(names []string) string {
	if len(names) == 0 {
		return r.styles.empty.Render("No services stored.")
	}

	return strings.Join(names, "\n")
}
