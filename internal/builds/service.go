package builds

import (
	"fmt"
	"strings"

	"github.com/tamrielworks/buildrand/internal/catalog"
	apperrors "github.com/tamrielworks/buildrand/internal/errors"
	"github.com/tamrielworks/buildrand/internal/random"
	"github.com/tamrielworks/buildrand/internal/uuid"
)

// MaxReplacedLines is the most original skill lines a build may trade out.
// At least one original line is always kept.
const MaxReplacedLines = 2

// Service defines the build generation interface
type Service interface {
	// Generate produces one randomized build
	Generate(input *GenerateInput) (*Build, error)

	// GenerateBatch produces count independent builds
	GenerateBatch(count int, input *GenerateInput) ([]*Build, error)
}

// GenerateInput constrains generation. The zero value means fully random.
type GenerateInput struct {
	// BaseClass pins the base class. Empty means a uniformly random class.
	BaseClass catalog.ClassName

	// NumLines fixes how many original lines are replaced (1 or 2).
	// Zero means a uniformly random choice per build.
	NumLines int
}

type service struct {
	source random.Source
	ids    uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Source random.Source  // Optional - defaults to a time-seeded source
	IDs    uuid.Generator // Optional - defaults to Google UUIDs
}

// NewService creates a new build generation service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		source: random.NewPseudo(),
		ids:    uuid.NewGoogleUUIDGenerator(),
	}

	if cfg != nil && cfg.Source != nil {
		svc.source = cfg.Source
	}
	if cfg != nil && cfg.IDs != nil {
		svc.ids = cfg.IDs
	}

	return svc
}

// Generate produces one randomized build following the subclassing rules:
// keep at least one original line, replace 1 or 2 lines, each replacement
// comes from a different class.
func (s *service) Generate(input *GenerateInput) (*Build, error) {
	if input == nil {
		input = &GenerateInput{}
	}

	baseClass := input.BaseClass
	if baseClass == "" {
		classes := catalog.ClassNames()
		idx, err := s.source.Intn(len(classes))
		if err != nil {
			return nil, apperrors.Wrap(err, "choosing base class")
		}
		baseClass = classes[idx]
	}

	originalLines, err := catalog.SkillLinesOf(baseClass)
	if err != nil {
		return nil, err
	}

	numReplacements := input.NumLines
	if numReplacements == 0 {
		draw, drawErr := s.source.Intn(MaxReplacedLines)
		if drawErr != nil {
			return nil, apperrors.Wrap(drawErr, "choosing replacement count")
		}
		numReplacements = draw + 1
	} else if numReplacements < 1 || numReplacements > MaxReplacedLines {
		return nil, apperrors.InvalidArgumentf("num lines must be 1 or %d, got %d", MaxReplacedLines, input.NumLines)
	}

	// Which original lines get traded out
	replacedIdx, err := s.source.Sample(len(originalLines), numReplacements)
	if err != nil {
		return nil, apperrors.Wrap(err, "choosing lines to replace")
	}
	replaced := make(map[int]bool, len(replacedIdx))
	for _, idx := range replacedIdx {
		replaced[idx] = true
	}

	finalLines := make([]catalog.SkillLine, 0, catalog.SkillLineCount)
	for i, line := range originalLines {
		if !replaced[i] {
			finalLines = append(finalLines, line)
		}
	}

	// Replacement classes, one per traded line, all distinct
	otherClasses := make([]catalog.ClassName, 0, len(catalog.ClassNames())-1)
	for _, class := range catalog.ClassNames() {
		if class != baseClass {
			otherClasses = append(otherClasses, class)
		}
	}

	classIdx, err := s.source.Sample(len(otherClasses), numReplacements)
	if err != nil {
		return nil, apperrors.Wrap(err, "choosing replacement classes")
	}

	subclassedFrom := make([]catalog.ClassName, 0, numReplacements)
	for _, idx := range classIdx {
		replacementClass := otherClasses[idx]

		lines, linesErr := catalog.SkillLinesOf(replacementClass)
		if linesErr != nil {
			return nil, linesErr
		}
		lineIdx, drawErr := s.source.Intn(len(lines))
		if drawErr != nil {
			return nil, apperrors.Wrap(drawErr, "choosing replacement line")
		}

		finalLines = append(finalLines, lines[lineIdx])
		subclassedFrom = append(subclassedFrom, replacementClass)
	}

	return &Build{
		ID:             s.ids.New(),
		BaseClass:      baseClass,
		SkillLines:     finalLines,
		SubclassedFrom: subclassedFrom,
		Description:    describe(baseClass, subclassedFrom),
	}, nil
}

// GenerateBatch produces count independent builds. A count of zero yields
// an empty batch without error.
func (s *service) GenerateBatch(count int, input *GenerateInput) ([]*Build, error) {
	if count < 0 {
		return nil, apperrors.InvalidArgumentf("build count must not be negative, got %d", count)
	}

	out := make([]*Build, 0, count)
	for i := 0; i < count; i++ {
		build, err := s.Generate(input)
		if err != nil {
			return nil, err
		}
		out = append(out, build)
	}
	return out, nil
}

func describe(baseClass catalog.ClassName, subclassedFrom []catalog.ClassName) string {
	if len(subclassedFrom) == 0 {
		return fmt.Sprintf("Pure %s build", baseClass)
	}

	names := make([]string, len(subclassedFrom))
	for i, class := range subclassedFrom {
		names[i] = string(class)
	}
	return fmt.Sprintf("%s with %s subclassing", baseClass, strings.Join(names, ", "))
}
