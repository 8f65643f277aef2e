package builds

import (
	"github.com/tamrielworks/buildrand/internal/catalog"
)

// Build is one randomized skill-line combination. It is immutable once
// created and is discarded after rendering.
type Build struct {
	// ID is a generated identifier used to label the build in output
	ID string

	// BaseClass is the class the build starts from
	BaseClass catalog.ClassName

	// SkillLines holds the final three lines: the kept original lines in
	// their original order, followed by the replacement lines in the order
	// their classes were chosen
	SkillLines []catalog.SkillLine

	// SubclassedFrom lists the classes that contributed replacement lines,
	// in selection order. Empty means a pure build.
	SubclassedFrom []catalog.ClassName

	// Description is a short human-readable summary
	Description string
}

// IsPure reports whether the build kept all three original skill lines
func (b *Build) IsPure() bool {
	return len(b.SubclassedFrom) == 0
}

// IsOriginalLine reports whether a skill line belongs to the base class's
// original set
func (b *Build) IsOriginalLine(line catalog.SkillLine) bool {
	owner, ok := catalog.ClassOfSkillLine(line)
	return ok && owner == b.BaseClass
}
