// Package catalog holds the static class and skill-line data the randomizer
// draws from. The tables are fixed at compile time and never mutated.
package catalog

import (
	"strings"

	apperrors "github.com/tamrielworks/buildrand/internal/errors"
)

// ClassName identifies one of the seven playable classes
type ClassName string

// SkillLine identifies a single class skill line
type SkillLine string

const (
	ClassArcanist     ClassName = "Arcanist"
	ClassDragonknight ClassName = "Dragonknight"
	ClassNightblade   ClassName = "Nightblade"
	ClassSorcerer     ClassName = "Sorcerer"
	ClassTemplar      ClassName = "Templar"
	ClassNecromancer  ClassName = "Necromancer"
	ClassWarden       ClassName = "Warden"
)

// SkillLineCount is the number of skill lines every class has
const SkillLineCount = 3

// classOrder fixes the presentation and selection order of classes
var classOrder = []ClassName{
	ClassArcanist,
	ClassDragonknight,
	ClassNightblade,
	ClassSorcerer,
	ClassTemplar,
	ClassNecromancer,
	ClassWarden,
}

var skillLines = map[ClassName][SkillLineCount]SkillLine{
	ClassArcanist:     {"Herald of the Tome", "Soldier of Apocrypha", "Curative Runeforms"},
	ClassDragonknight: {"Ardent Flame", "Draconic Power", "Earthen Heart"},
	ClassNightblade:   {"Assassination", "Shadow", "Siphoning"},
	ClassSorcerer:     {"Daedric Summoning", "Dark Magic", "Storm Calling"},
	ClassTemplar:      {"Aedric Spear", "Dawn's Wrath", "Restoring Light"},
	ClassNecromancer:  {"Grave Lord", "Bone Tyrant", "Living Death"},
	ClassWarden:       {"Animal Companions", "Green Balance", "Winter's Embrace"},
}

// lineOwner is the reverse index from skill line to owning class.
// Skill-line names are unique across classes.
var lineOwner = func() map[SkillLine]ClassName {
	owners := make(map[SkillLine]ClassName, len(skillLines)*SkillLineCount)
	for _, class := range classOrder {
		for _, line := range skillLines[class] {
			owners[line] = class
		}
	}
	return owners
}()

// ClassNames returns all class names in their fixed declaration order.
// The returned slice is a copy and safe to modify.
func ClassNames() []ClassName {
	names := make([]ClassName, len(classOrder))
	copy(names, classOrder)
	return names
}

// Contains reports whether the class exists in the catalog
func Contains(class ClassName) bool {
	_, ok := skillLines[class]
	return ok
}

// SkillLinesOf returns the three skill lines of a class in their fixed
// order. The returned slice is a copy and safe to modify.
func SkillLinesOf(class ClassName) ([]SkillLine, error) {
	lines, ok := skillLines[class]
	if !ok {
		return nil, apperrors.NotFoundf("unknown class %q", class)
	}

	out := make([]SkillLine, SkillLineCount)
	copy(out, lines[:])
	return out, nil
}

// ClassOfSkillLine returns the class a skill line belongs to
func ClassOfSkillLine(line SkillLine) (ClassName, bool) {
	class, ok := lineOwner[line]
	return class, ok
}

// ParseClassName resolves a case-insensitive class name string
func ParseClassName(s string) (ClassName, error) {
	for _, class := range classOrder {
		if strings.EqualFold(s, string(class)) {
			return class, nil
		}
	}
	return "", apperrors.InvalidArgumentf("unknown class %q, expected one of %s", s, joinClassNames())
}

func joinClassNames() string {
	names := make([]string, len(classOrder))
	for i, class := range classOrder {
		names[i] = string(class)
	}
	return strings.Join(names, ", ")
}
