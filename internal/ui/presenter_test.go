package ui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	"github.com/tamrielworks/buildrand/internal/ui"
)

func sampleBuild() *builds.Build {
	return &builds.Build{
		ID:             "0f2c3a9d-aaaa-bbbb-cccc-000000000000",
		BaseClass:      catalog.ClassWarden,
		SkillLines:     []catalog.SkillLine{"Animal Companions", "Winter's Embrace", "Assassination"},
		SubclassedFrom: []catalog.ClassName{catalog.ClassNightblade},
		Description:    "Warden with Nightblade subclassing",
	}
}

func TestPlainPresenterRender(t *testing.T) {
	var buf bytes.Buffer
	presenter := ui.NewPlainPresenter(&buf)

	presenter.Render(sampleBuild())
	out := buf.String()

	assert.Contains(t, out, "Warden Build [0f2c3a9d]")
	assert.Contains(t, out, "* Animal Companions")
	assert.Contains(t, out, "* Winter's Embrace")
	assert.Contains(t, out, "* Assassination (from Nightblade)")
	assert.Contains(t, out, "Warden with Nightblade subclassing")
	assert.NotContains(t, out, "Animal Companions (from", "original lines must not be attributed")
}

func TestPlainPresenterRenderBatch(t *testing.T) {
	var buf bytes.Buffer
	presenter := ui.NewPlainPresenter(&buf)

	presenter.RenderBatch([]*builds.Build{sampleBuild(), sampleBuild()}, "2 Random Builds")
	out := buf.String()

	assert.Contains(t, out, "2 Random Builds")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("Warden Build")))
}

func TestPlainPresenterEmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	presenter := ui.NewPlainPresenter(&buf)

	presenter.RenderBatch(nil, "0 Random Builds")

	assert.Contains(t, buf.String(), "0 Random Builds")
	assert.NotContains(t, buf.String(), "Build [")
}

func TestStyledPresenterRender(t *testing.T) {
	var buf bytes.Buffer
	presenter := ui.NewStyledPresenter(&buf)

	presenter.Render(sampleBuild())
	out := buf.String()

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Warden Build")
	assert.Contains(t, out, "Animal Companions")
	assert.Contains(t, out, "(from Nightblade)")
	assert.Contains(t, out, "Warden with Nightblade subclassing")
}

func TestStyledPresenterRenderBatch(t *testing.T) {
	var buf bytes.Buffer
	presenter := ui.NewStyledPresenter(&buf)

	presenter.RenderBatch([]*builds.Build{sampleBuild()}, "1 Random Builds")
	out := buf.String()

	assert.Contains(t, out, "1 Random Builds")
	assert.Contains(t, out, "Warden Build")
}

func TestPresenterInterfaces(t *testing.T) {
	var buf bytes.Buffer

	// Both renderers must satisfy the Presenter contract
	var _ ui.Presenter = ui.NewPlainPresenter(&buf)
	var _ ui.Presenter = ui.NewStyledPresenter(&buf)
}
