package dash

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/midbel/tapcharts"
	"github.com/midbel/tapcharts/canvas"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFileConfig(t *testing.T) {
	g := GlobalStyle()

	f := File{
		Name:  "sales",
		Kind:  "PIE",
		Data:  "testdata/pie.csv",
		Color: ptr(3),
		Sum:   []int{1, 2},
		Count: 3,
		Style: Style{
			Radius: 100,
		},
	}
	cfg, err := f.Config(g)
	require.NoError(t, err)
	assert.Equal(t, KindPie, cfg.Kind)
	assert.Equal(t, 1.0, cfg.Progress)
	assert.Equal(t, 100.0, cfg.Radius)
	assert.Equal(t, g.Width, cfg.Width)
	assert.Equal(t, g.Palette, cfg.Palette)

	w, h := cfg.Dimension()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 200.0, h)

	src, ok := cfg.Source.(LocalFile)
	require.True(t, ok)
	assert.Equal(t, 3, src.Color)
	assert.Equal(t, 3, src.Count)

	slices, err := cfg.Source.Slices(context.Background(), cfg.getPalette())
	require.NoError(t, err)
	assert.Equal(t, []charts.Slice{
		{Value: 21, Color: "magenta"},
		{Value: 32, Color: "darkgray"},
		{Value: 75, Color: "black"},
	}, slices)
}

func TestFileConfigDefaults(t *testing.T) {
	cfg, err := File{Data: "testdata/line.csv"}.Config(GlobalStyle())
	require.NoError(t, err)
	assert.Equal(t, "line", cfg.Name)
	assert.Equal(t, KindLine, cfg.Kind)

	w, h := cfg.Dimension()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)

	cfg, err = File{Name: "mem", Values: []float64{1, 2}, Colors: []string{"red"}, Progress: ptr(0.5)}.Config(GlobalStyle())
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Progress)
	assert.IsType(t, Values{}, cfg.Source)
}

func TestFileConfigErrors(t *testing.T) {
	tests := []struct {
		File
		Kind bool
	}{
		{File: File{Name: "bar", Kind: "bar", Values: []float64{1}}, Kind: true},
		{File: File{Name: "empty"}},
		{File: File{Values: []float64{1}}},
	}
	for _, tt := range tests {
		_, err := tt.File.Config(GlobalStyle())
		require.Error(t, err)
		if tt.Kind {
			assert.ErrorIs(t, err, ErrKind)
		}
	}

	_, err := Configs([]File{{Name: "ok", Values: []float64{1}}, {Name: "ko"}}, GlobalStyle())
	assert.Error(t, err)
}

func TestStyleMerge(t *testing.T) {
	s := Style{Width: 10, Palette: "tableau10"}.Merge(GlobalStyle())
	assert.Equal(t, 10.0, s.Width)
	assert.Equal(t, DefaultHeight, s.Height)
	assert.Equal(t, "tableau10", s.Palette)
	assert.Equal(t, charts.DefaultStroke.Color.String(), s.Stroke)
	assert.Equal(t, charts.DefaultStroke.Width, s.Line)
}

func TestConfigRender(t *testing.T) {
	cfg := Config{
		Name:     "pie",
		Kind:     KindPie,
		Progress: 1,
		Source:   NewLocalFile("testdata/pie.csv"),
		Style:    Style{Radius: 50}.Merge(GlobalStyle()),
	}
	var buf bytes.Buffer
	require.NoError(t, cfg.Render(context.Background(), &buf, canvas.FormatSVG))
	assert.Equal(t, 5, strings.Count(buf.String(), "<path"))

	buf.Reset()
	require.NoError(t, cfg.Render(context.Background(), &buf, canvas.FormatPNG))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	err := cfg.Render(context.Background(), &buf, "gif")
	assert.ErrorIs(t, err, canvas.ErrFormat)

	cfg.Kind = "bar"
	err = cfg.Render(context.Background(), &buf, canvas.FormatSVG)
	assert.ErrorIs(t, err, ErrKind)

	cfg.Kind = KindLine
	cfg.Source = nil
	assert.Error(t, cfg.Render(context.Background(), &buf, canvas.FormatSVG))
}

func TestConfigTap(t *testing.T) {
	const radius = 100
	cfg := Config{
		Name:   "pie",
		Kind:   KindPie,
		Source: Values{List: []float64{20, 30, 72, 87, 98}},
		Style:  Style{Radius: radius}.Merge(GlobalStyle()),
	}
	list, err := charts.BuildPie([]charts.Slice{{Value: 20}, {Value: 30}, {Value: 72}, {Value: 87}, {Value: 98}})
	require.NoError(t, err)
	for i, s := range list {
		pos := charts.PointAt(charts.Midpoint(s), radius/2, radius)
		got, slice, err := cfg.Tap(context.Background(), pos.X, pos.Y)
		require.NoError(t, err)
		assert.Equal(t, i, got)
		assert.Equal(t, s.Value, slice.Value)
		assert.Equal(t, charts.Category10.At(i), slice.Color)
	}

	cfg.Kind = KindLine
	_, _, err = cfg.Tap(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrKind)
}

func TestRender(t *testing.T) {
	var (
		dir  = t.TempDir()
		cfgs []Config
	)
	for _, n := range []string{"a.svg", "b.png", "c.svg"} {
		cfgs = append(cfgs, Config{
			Name:   n,
			Kind:   KindLine,
			Path:   filepath.Join(dir, n),
			Source: NewLocalFile("testdata/line.csv"),
			Style:  Style{Width: 120, Height: 80}.Merge(GlobalStyle()),
		})
	}
	cfgs = append(cfgs, Config{
		Name:     "pie.svg",
		Kind:     KindPie,
		Path:     filepath.Join(dir, "pie.svg"),
		Progress: 0.5,
		Source:   NewLocalFile("testdata/pie.csv"),
		Style:    Style{Radius: 40, Animate: true}.Merge(GlobalStyle()),
	})
	require.NoError(t, Render(context.Background(), cfgs...))

	for _, c := range cfgs {
		fi, err := os.Stat(c.Path)
		require.NoError(t, err, c.Name)
		assert.NotZero(t, fi.Size(), c.Name)
	}
}

func TestRenderFailure(t *testing.T) {
	dir := t.TempDir()
	cfgs := []Config{
		{
			Name:   "ok",
			Kind:   KindLine,
			Path:   filepath.Join(dir, "ok.svg"),
			Source: Values{List: []float64{1, 2}},
			Style:  GlobalStyle(),
		},
		{
			Name:   "ko",
			Kind:   KindPie,
			Path:   filepath.Join(dir, "ko.svg"),
			Source: Values{List: []float64{0, 0}},
			Style:  GlobalStyle(),
		},
	}
	err := Render(context.Background(), cfgs...)
	assert.ErrorIs(t, err, charts.ErrDegenerateDataset)
	assert.Contains(t, err.Error(), "ko")
}
