package ui

import (
	"github.com/tamrielworks/buildrand/internal/builds"
)

// Presenter renders builds to an output surface. The generator and the
// interactive controller depend only on this interface, so the plain and
// styled renderers stay interchangeable.
type Presenter interface {
	// Render displays a single build
	Render(build *builds.Build)

	// RenderBatch displays a titled sequence of builds
	RenderBatch(batch []*builds.Build, title string)
}
