package dash

import (
	"strings"

	"github.com/pkg/errors"

	charts "github.com/midbel/tapcharts"
)

// File is the description of a chart as found in the configuration file.
type File struct {
	Name     string    `mapstructure:"name"`
	Kind     string    `mapstructure:"kind"`
	Data     string    `mapstructure:"data"`
	Output   string    `mapstructure:"output"`
	Value    *int      `mapstructure:"value"`
	Sum      []int     `mapstructure:"sum"`
	Color    *int      `mapstructure:"color"`
	Offset   int       `mapstructure:"offset"`
	Count    int       `mapstructure:"count"`
	Progress *float64  `mapstructure:"progress"`
	Values   []float64 `mapstructure:"values"`
	Colors   []string  `mapstructure:"colors"`

	Style `mapstructure:",squash"`
}

// Config turns the description into a chart, filling what it leaves unset
// from g.
func (f File) Config(g Style) (Config, error) {
	cfg := Config{
		Name:     f.Name,
		Kind:     strings.ToLower(f.Kind),
		Path:     f.Output,
		Progress: 1,
		Style:    f.Style.Merge(g),
	}
	if cfg.Kind == "" {
		cfg.Kind = KindLine
	}
	if cfg.Kind != KindLine && cfg.Kind != KindPie {
		return cfg, errors.Wrapf(ErrKind, "%s: %s", f.Name, f.Kind)
	}
	if f.Progress != nil {
		cfg.Progress = *f.Progress
	}
	switch {
	case f.Data != "":
		src := NewLocalFile(f.Data)
		src.Ident = f.Name
		src.Limit = Limit{
			Offset: f.Offset,
			Count:  f.Count,
		}
		if f.Value != nil {
			src.Value = SelectSingle(*f.Value)
		}
		if len(f.Sum) > 0 {
			src.Value = SelectSum(f.Sum)
		}
		if f.Color != nil {
			src.Color = *f.Color
		}
		cfg.Source = src
		if cfg.Name == "" {
			cfg.Name = src.Name()
		}
	case len(f.Values) > 0:
		src := Values{
			Ident: f.Name,
			List:  f.Values,
		}
		for _, c := range f.Colors {
			src.Colors = append(src.Colors, charts.ColorTag(c))
		}
		cfg.Source = src
	default:
		return cfg, errors.Errorf("%s: neither data nor values given", f.Name)
	}
	if cfg.Name == "" {
		return cfg, errors.New("chart without name")
	}
	return cfg, nil
}

// Configs converts all the files, stopping at the first invalid one.
func Configs(files []File, g Style) ([]Config, error) {
	list := make([]Config, 0, len(files))
	for _, f := range files {
		c, err := f.Config(g)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}
