package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	"github.com/tamrielworks/buildrand/internal/uuid"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(1, 2).
			Foreground(lipgloss.Color("13")).
			Bold(true)

	titleStyle    = lipgloss.NewStyle().Bold(true)
	lineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	subclassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	pureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// StyledPresenter renders builds as bordered panels using lipgloss
type StyledPresenter struct {
	w io.Writer
}

// NewStyledPresenter creates a presenter writing styled panels to w
func NewStyledPresenter(w io.Writer) *StyledPresenter {
	return &StyledPresenter{w: w}
}

// Render implements Presenter.Render
func (p *StyledPresenter) Render(build *builds.Build) {
	var content []string

	content = append(content,
		titleStyle.Render(fmt.Sprintf("%s Build", build.BaseClass))+
			labelStyle.Render(fmt.Sprintf("  [%s]", uuid.Short(build.ID))),
		"",
		fmt.Sprintf("%s with Skill Lines:", build.BaseClass),
	)

	for _, line := range build.SkillLines {
		rendered := "   " + lineStyle.Render(fmt.Sprintf("• %s", line))
		if !build.IsOriginalLine(line) {
			source, _ := catalog.ClassOfSkillLine(line)
			rendered += " " + sourceStyle.Render(fmt.Sprintf("(from %s)", source))
		}
		content = append(content, rendered)
	}

	content = append(content, "")
	if build.IsPure() {
		content = append(content, pureStyle.Render(build.Description))
	} else {
		content = append(content, subclassStyle.Render(build.Description))
	}

	fmt.Fprintln(p.w, panelStyle.Render(strings.Join(content, "\n")))
}

// RenderBatch implements Presenter.RenderBatch
func (p *StyledPresenter) RenderBatch(batch []*builds.Build, title string) {
	fmt.Fprintln(p.w, headerStyle.Render(title))
	fmt.Fprintln(p.w)

	for i, build := range batch {
		p.Render(build)
		if i < len(batch)-1 {
			fmt.Fprintln(p.w)
		}
	}
}
