package dash

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	charts "github.com/midbel/tapcharts"
)

// NoColumn disables the colour column of a source: slices then take their
// colour from the palette.
const NoColumn = -1

type DataSource interface {
	Name() string
	Values(context.Context) ([]float64, error)
	Slices(context.Context, charts.Palette) ([]charts.Slice, error)
}

type Limit struct {
	Offset int
	Count  int
}

func (lim Limit) apply(rows [][]string) [][]string {
	z := len(rows)
	if lim.Offset < 0 {
		lim.Offset = z + lim.Offset
	}
	if lim.Offset > 0 && lim.Offset < z {
		rows = rows[lim.Offset:]
	}
	if lim.Count > 0 && lim.Count < len(rows) {
		rows = rows[:lim.Count]
	}
	return rows
}

// LocalFile reads csv data from a path or from a file:// or http(s):// url.
// The first row is a header and is skipped.
type LocalFile struct {
	Path  string
	Ident string
	Value Selector
	Color int
	Limit
}

func NewLocalFile(path string) LocalFile {
	return LocalFile{
		Path:  path,
		Value: SelectSingle(1),
		Color: NoColumn,
	}
}

func (f LocalFile) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f LocalFile) Values(ctx context.Context) ([]float64, error) {
	rows, err := f.rows(ctx)
	if err != nil {
		return nil, err
	}
	return selectValues(rows, f.Value)
}

func (f LocalFile) Slices(ctx context.Context, palette charts.Palette) ([]charts.Slice, error) {
	rows, err := f.rows(ctx)
	if err != nil {
		return nil, err
	}
	return selectSlices(rows, f.Value, f.Color, palette)
}

func (f LocalFile) rows(ctx context.Context) ([][]string, error) {
	r, err := readFrom(ctx, f.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rows, err := loadRows(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", f.Path)
	}
	return f.Limit.apply(rows), nil
}

// LocalData holds csv content inline.
type LocalData struct {
	Ident   string
	Content string
	Value   Selector
	Color   int
}

func (d LocalData) Name() string {
	return d.Ident
}

func (d LocalData) Values(_ context.Context) ([]float64, error) {
	rows, err := loadRows(strings.NewReader(d.Content))
	if err != nil {
		return nil, err
	}
	return selectValues(rows, d.Value)
}

func (d LocalData) Slices(_ context.Context, palette charts.Palette) ([]charts.Slice, error) {
	rows, err := loadRows(strings.NewReader(d.Content))
	if err != nil {
		return nil, err
	}
	return selectSlices(rows, d.Value, d.Color, palette)
}

// Values is a source built from values already in memory.
type Values struct {
	Ident  string
	List   []float64
	Colors []charts.ColorTag
}

func (v Values) Name() string {
	return v.Ident
}

func (v Values) Values(_ context.Context) ([]float64, error) {
	list := make([]float64, len(v.List))
	copy(list, v.List)
	return list, nil
}

func (v Values) Slices(_ context.Context, palette charts.Palette) ([]charts.Slice, error) {
	list := make([]charts.Slice, len(v.List))
	for i := range v.List {
		list[i].Value = v.List[i]
		if i < len(v.Colors) && v.Colors[i] != "" {
			list[i].Color = v.Colors[i]
		} else {
			list[i].Color = palette.At(i)
		}
	}
	return list, nil
}

func selectValues(rows [][]string, sel Selector) ([]float64, error) {
	if sel == nil {
		sel = SelectSingle(1)
	}
	list := make([]float64, 0, len(rows))
	for i, row := range rows {
		f, err := sel.Select(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i+1)
		}
		list = append(list, f)
	}
	return list, nil
}

func selectSlices(rows [][]string, sel Selector, color int, palette charts.Palette) ([]charts.Slice, error) {
	values, err := selectValues(rows, sel)
	if err != nil {
		return nil, err
	}
	list := make([]charts.Slice, len(values))
	for i := range values {
		list[i].Value = values[i]
		list[i].Color = palette.At(i)
		if color < 0 {
			continue
		}
		if color >= len(rows[i]) {
			return nil, errors.Wrapf(ErrIndex, "row %d: color column %d", i+1, color)
		}
		if str := strings.TrimSpace(rows[i][color]); str != "" {
			list[i].Color = charts.ColorTag(str)
		}
	}
	return list, nil
}

func readFrom(ctx context.Context, location string) (io.ReadCloser, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != http.StatusOK {
			res.Body.Close()
			return nil, errors.Errorf("%s: request does not end with success result code (%d)", location, res.StatusCode)
		}
		return res.Body, nil
	case "":
		return os.Open(location)
	case "file":
		return os.Open(u.Path)
	default:
		return nil, errors.Errorf("%s: unsupported scheme", u.Scheme)
	}
}

func loadRows(r io.Reader) ([][]string, error) {
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	rows, err := rs.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
