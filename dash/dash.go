package dash

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	charts "github.com/midbel/tapcharts"
	"github.com/midbel/tapcharts/canvas"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultRadius = 250.0

	DefaultPath = "out.svg"
)

const (
	KindLine = "line"
	KindPie  = "pie"
)

var ErrKind = errors.New("unsupported chart kind")

// Config describes one chart: what to draw, from which data and where to
// write it.
type Config struct {
	Name     string
	Kind     string
	Path     string
	Progress float64
	Source   DataSource

	Style
}

// Dimension is the size of the surface the chart needs. A pie is drawn in
// the square enclosing its circle.
func (c Config) Dimension() (float64, float64) {
	if c.Kind == KindPie {
		return 2 * c.Radius, 2 * c.Radius
	}
	return c.Width, c.Height
}

func (c Config) Draw(ctx context.Context, cv charts.Canvas) error {
	if c.Source == nil {
		return errors.Errorf("%s: no data source", c.Name)
	}
	switch c.Kind {
	case KindLine, "":
		values, err := c.Source.Values(ctx)
		if err != nil {
			return err
		}
		ch := charts.LineChart{
			Width:  c.Width,
			Height: c.Height,
			Stroke: c.getStroke(),
		}
		_, err = ch.Draw(cv, values)
		return err
	case KindPie:
		slices, err := c.Source.Slices(ctx, c.getPalette())
		if err != nil {
			return err
		}
		ch := charts.PieChart{
			Radius:  c.Radius,
			Animate: c.Animate,
		}
		_, err = ch.Draw(cv, slices, c.Progress)
		return err
	default:
		return errors.Wrapf(ErrKind, "%s", c.Kind)
	}
}

func (c Config) Render(ctx context.Context, w io.Writer, format string) error {
	width, height := c.Dimension()
	sf, err := canvas.New(format, width, height)
	if err != nil {
		return err
	}
	if cl, ok := sf.(io.Closer); ok {
		defer cl.Close()
	}
	if err := c.Draw(ctx, sf); err != nil {
		return err
	}
	return sf.Render(w)
}

// Tap returns the index and the data of the slice found at (x, y).
func (c Config) Tap(ctx context.Context, x, y float64) (int, charts.Slice, error) {
	var zero charts.Slice
	if c.Kind != KindPie {
		return -1, zero, errors.Wrapf(ErrKind, "%s: can not be tapped", c.Kind)
	}
	if c.Source == nil {
		return -1, zero, errors.Errorf("%s: no data source", c.Name)
	}
	slices, err := c.Source.Slices(ctx, c.getPalette())
	if err != nil {
		return -1, zero, err
	}
	ch := charts.PieChart{
		Radius: c.Radius,
	}
	i, err := ch.Select(slices, x, y, nil)
	if err != nil {
		return -1, zero, err
	}
	return i, slices[i], nil
}

func (c Config) Save(ctx context.Context) error {
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return c.Render(ctx, w, canvas.FormatOf(path))
}

// Render saves every chart concurrently. The first failure cancels the
// charts not yet written.
func Render(ctx context.Context, cfgs ...Config) error {
	grp, ctx := errgroup.WithContext(ctx)
	for _, c := range cfgs {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return errors.Wrapf(c.Save(ctx), "%s", c.Name)
		})
	}
	return grp.Wait()
}
