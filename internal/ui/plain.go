package ui

import (
	"fmt"
	"io"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	"github.com/tamrielworks/buildrand/internal/uuid"
)

// PlainPresenter renders builds as unstyled text, suitable for pipes and
// dumb terminals
type PlainPresenter struct {
	w io.Writer
}

// NewPlainPresenter creates a presenter writing plain text to w
func NewPlainPresenter(w io.Writer) *PlainPresenter {
	return &PlainPresenter{w: w}
}

// Render implements Presenter.Render
func (p *PlainPresenter) Render(build *builds.Build) {
	fmt.Fprintf(p.w, "=== %s Build [%s] ===\n", build.BaseClass, uuid.Short(build.ID))
	fmt.Fprintf(p.w, "%s with Skill Lines:\n", build.BaseClass)

	for _, line := range build.SkillLines {
		if build.IsOriginalLine(line) {
			fmt.Fprintf(p.w, "  * %s\n", line)
			continue
		}
		source, _ := catalog.ClassOfSkillLine(line)
		fmt.Fprintf(p.w, "  * %s (from %s)\n", line, source)
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, build.Description)
}

// RenderBatch implements Presenter.RenderBatch
func (p *PlainPresenter) RenderBatch(batch []*builds.Build, title string) {
	fmt.Fprintf(p.w, "--- %s ---\n\n", title)

	for i, build := range batch {
		p.Render(build)
		if i < len(batch)-1 {
			fmt.Fprintln(p.w)
		}
	}
}
