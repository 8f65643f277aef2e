package builds_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	apperrors "github.com/tamrielworks/buildrand/internal/errors"
	"github.com/tamrielworks/buildrand/internal/random"
	mockrandom "github.com/tamrielworks/buildrand/internal/random/mock"
)

// sequentialIDs is a deterministic uuid.Generator for tests
type sequentialIDs struct {
	n int
}

func (g *sequentialIDs) New() string {
	g.n++
	return fmt.Sprintf("build-%d", g.n)
}

func newMockedService(draws []int) (builds.Service, *mockrandom.ManualSource) {
	src := mockrandom.NewManualSource()
	src.SetDraws(draws)
	svc := builds.NewService(&builds.ServiceConfig{
		Source: src,
		IDs:    &sequentialIDs{},
	})
	return svc, src
}

func newSeededService(seed int64) builds.Service {
	return builds.NewService(&builds.ServiceConfig{
		Source: random.NewSeeded(seed),
		IDs:    &sequentialIDs{},
	})
}

func TestGenerateDeterministic(t *testing.T) {
	tests := []struct {
		name               string
		input              *builds.GenerateInput
		draws              []int
		wantBase           catalog.ClassName
		wantLines          []catalog.SkillLine
		wantSubclassedFrom []catalog.ClassName
		wantDescription    string
	}{
		{
			name:  "pinned warden single replacement",
			input: &builds.GenerateInput{BaseClass: catalog.ClassWarden, NumLines: 1},
			// replace line 1, pick other-class 2 (Nightblade), pick its line 0
			draws:              []int{1, 2, 0},
			wantBase:           catalog.ClassWarden,
			wantLines:          []catalog.SkillLine{"Animal Companions", "Winter's Embrace", "Assassination"},
			wantSubclassedFrom: []catalog.ClassName{catalog.ClassNightblade},
			wantDescription:    "Warden with Nightblade subclassing",
		},
		{
			name:  "fully random double replacement",
			input: nil,
			// base 6 (Warden), count draw 1 (=2 lines), replace lines 0 and 2,
			// classes 0 and 3 (Arcanist, Sorcerer), their lines 2 and 1
			draws:              []int{6, 1, 0, 2, 0, 3, 2, 1},
			wantBase:           catalog.ClassWarden,
			wantLines:          []catalog.SkillLine{"Green Balance", "Curative Runeforms", "Dark Magic"},
			wantSubclassedFrom: []catalog.ClassName{catalog.ClassArcanist, catalog.ClassSorcerer},
			wantDescription:    "Warden with Arcanist, Sorcerer subclassing",
		},
		{
			name:  "replacement order follows class selection order",
			input: &builds.GenerateInput{BaseClass: catalog.ClassTemplar, NumLines: 2},
			// replace lines 0 and 1, classes 4 then 0 (Necromancer, Arcanist)
			draws:              []int{0, 1, 4, 0, 0, 1},
			wantBase:           catalog.ClassTemplar,
			wantLines:          []catalog.SkillLine{"Restoring Light", "Grave Lord", "Soldier of Apocrypha"},
			wantSubclassedFrom: []catalog.ClassName{catalog.ClassNecromancer, catalog.ClassArcanist},
			wantDescription:    "Templar with Necromancer, Arcanist subclassing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, src := newMockedService(tt.draws)

			build, err := svc.Generate(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantBase, build.BaseClass)
			assert.Equal(t, tt.wantLines, build.SkillLines)
			assert.Equal(t, tt.wantSubclassedFrom, build.SubclassedFrom)
			assert.Equal(t, tt.wantDescription, build.Description)
			assert.NotEmpty(t, build.ID)

			// Same draw sequence, same build: no hidden state between calls
			src.SetDraws(tt.draws)
			again, err := svc.Generate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, build.SkillLines, again.SkillLines)
			assert.Equal(t, build.SubclassedFrom, again.SubclassedFrom)
		})
	}
}

func TestGenerateInvalidNumLines(t *testing.T) {
	svc := newSeededService(1)

	for _, numLines := range []int{-1, 3, 10} {
		t.Run(fmt.Sprintf("numLines=%d", numLines), func(t *testing.T) {
			build, err := svc.Generate(&builds.GenerateInput{NumLines: numLines})

			assert.Nil(t, build)
			assert.True(t, apperrors.IsInvalidArgument(err))
		})
	}
}

func TestGenerateUnknownClass(t *testing.T) {
	svc := newSeededService(1)

	build, err := svc.Generate(&builds.GenerateInput{BaseClass: "Mystic"})

	assert.Nil(t, build)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGenerateInvariants(t *testing.T) {
	svc := newSeededService(99)

	for i := 0; i < 500; i++ {
		build, err := svc.Generate(nil)
		require.NoError(t, err)

		require.Len(t, build.SkillLines, 3)

		seen := map[catalog.SkillLine]bool{}
		for _, line := range build.SkillLines {
			assert.False(t, seen[line], "duplicate line %q", line)
			seen[line] = true
		}

		require.True(t, len(build.SubclassedFrom) >= 1 && len(build.SubclassedFrom) <= 2,
			"subclassed from %d classes", len(build.SubclassedFrom))

		seenClasses := map[catalog.ClassName]bool{}
		for _, class := range build.SubclassedFrom {
			assert.NotEqual(t, build.BaseClass, class)
			assert.False(t, seenClasses[class], "duplicate subclass %q", class)
			seenClasses[class] = true
		}

		// Kept originals plus one line per subclass
		originals := 0
		for _, line := range build.SkillLines {
			owner, ok := catalog.ClassOfSkillLine(line)
			require.True(t, ok)
			if owner == build.BaseClass {
				originals++
			} else {
				assert.Contains(t, build.SubclassedFrom, owner)
			}
		}
		assert.Equal(t, 3-len(build.SubclassedFrom), originals)
	}
}

func TestGeneratePinnedWardenSingleLine(t *testing.T) {
	svc := newSeededService(7)
	input := &builds.GenerateInput{BaseClass: catalog.ClassWarden, NumLines: 1}

	for i := 0; i < 200; i++ {
		build, err := svc.Generate(input)
		require.NoError(t, err)

		assert.Equal(t, catalog.ClassWarden, build.BaseClass)
		require.Len(t, build.SubclassedFrom, 1)
		assert.NotEqual(t, catalog.ClassWarden, build.SubclassedFrom[0])

		foreign := 0
		for _, line := range build.SkillLines {
			if !build.IsOriginalLine(line) {
				foreign++
			}
		}
		assert.Equal(t, 1, foreign)
	}
}

func TestGenerateBatch(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantLen   int
		wantError bool
	}{
		{name: "default batch", count: 5, wantLen: 5},
		{name: "empty batch", count: 0, wantLen: 0},
		{name: "negative count", count: -1, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSeededService(11)

			batch, err := svc.GenerateBatch(tt.count, nil)

			if tt.wantError {
				assert.True(t, apperrors.IsInvalidArgument(err))
				return
			}

			require.NoError(t, err)
			assert.Len(t, batch, tt.wantLen)
		})
	}
}

func TestGenerateBatchIndependentBuilds(t *testing.T) {
	svc := newSeededService(13)

	batch, err := svc.GenerateBatch(20, nil)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, build := range batch {
		assert.False(t, ids[build.ID], "duplicate build ID %q", build.ID)
		ids[build.ID] = true
	}
}

func TestBuildIsPure(t *testing.T) {
	pure := &builds.Build{BaseClass: catalog.ClassWarden}
	assert.True(t, pure.IsPure())

	subclassed := &builds.Build{
		BaseClass:      catalog.ClassWarden,
		SubclassedFrom: []catalog.ClassName{catalog.ClassTemplar},
	}
	assert.False(t, subclassed.IsPure())
}
