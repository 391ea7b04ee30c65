package dash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	charts "github.com/midbel/tapcharts"
)

func TestLocalFileValues(t *testing.T) {
	tests := []struct {
		Limit
		Want []float64
	}{
		{Want: []float64{40, 70, 80, 60, 90, 20, 10}},
		{Limit: Limit{Offset: 2}, Want: []float64{80, 60, 90, 20, 10}},
		{Limit: Limit{Count: 3}, Want: []float64{40, 70, 80}},
		{Limit: Limit{Offset: 1, Count: 2}, Want: []float64{70, 80}},
		{Limit: Limit{Offset: -2}, Want: []float64{20, 10}},
		{Limit: Limit{Offset: 10}, Want: []float64{40, 70, 80, 60, 90, 20, 10}},
	}
	for _, tt := range tests {
		src := NewLocalFile("testdata/line.csv")
		src.Limit = tt.Limit
		got, err := src.Values(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.Want, got, "limit %+v", tt.Limit)
	}
}

func TestLocalFileName(t *testing.T) {
	src := NewLocalFile("testdata/line.csv")
	assert.Equal(t, "line", src.Name())
	src.Ident = "week"
	assert.Equal(t, "week", src.Name())
}

func TestLocalFileSlices(t *testing.T) {
	src := NewLocalFile("testdata/pie.csv")
	src.Color = 3

	got, err := src.Slices(context.Background(), charts.Category10)
	require.NoError(t, err)
	want := []charts.Slice{
		{Value: 20, Color: "magenta"},
		{Value: 30, Color: "darkgray"},
		{Value: 72, Color: "black"},
		{Value: 87, Color: "cyan"},
		{Value: 98, Color: "yellow"},
	}
	assert.Equal(t, want, got)

	src.Color = NoColumn
	src.Value = SelectSum([]int{1, 2})
	got, err = src.Slices(context.Background(), charts.Category10)
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, 21.0, got[0].Value)
	assert.Equal(t, 103.0, got[4].Value)
	for i := range got {
		assert.Equal(t, charts.Category10.At(i), got[i].Color)
	}

	src.Color = 7
	_, err = src.Slices(context.Background(), charts.Category10)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestLocalFileErrors(t *testing.T) {
	src := NewLocalFile("testdata/missing.csv")
	_, err := src.Values(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	src = NewLocalFile("testdata/pie.csv")
	src.Value = SelectSingle(0)
	_, err = src.Values(context.Background())
	assert.Error(t, err)

	src = NewLocalFile("ftp://example.com/pie.csv")
	_, err = src.Values(context.Background())
	assert.Error(t, err)
}

func TestLocalFileSpecialPath(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"data#1.csv", "data?v=2.csv"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("k,v\na,3\nb,4\n"), 0o644))

		got, err := NewLocalFile(path).Values(context.Background())
		require.NoError(t, err, name)
		assert.Equal(t, []float64{3, 4}, got, name)
	}
}

func TestLocalFileRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/line.csv" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "testdata/line.csv")
	}))
	defer srv.Close()

	src := NewLocalFile(srv.URL + "/line.csv")
	src.Count = 2
	got, err := src.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 70}, got)

	src = NewLocalFile(srv.URL + "/other.csv")
	_, err = src.Values(context.Background())
	assert.Error(t, err)
}

func TestLocalData(t *testing.T) {
	src := LocalData{
		Ident:   "inline",
		Content: "name,value,color\nx,1,red\ny,3,\n",
		Color:   2,
	}
	assert.Equal(t, "inline", src.Name())

	values, err := src.Values(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, values)

	slices, err := src.Slices(context.Background(), charts.Tableau10)
	require.NoError(t, err)
	assert.Equal(t, []charts.Slice{
		{Value: 1, Color: "red"},
		{Value: 3, Color: charts.Tableau10.At(1)},
	}, slices)
}

func TestValuesSource(t *testing.T) {
	src := Values{
		Ident:  "mem",
		List:   []float64{1, 2, 3},
		Colors: []charts.ColorTag{"red", ""},
	}
	got, err := src.Values(context.Background())
	require.NoError(t, err)
	got[0] = 100
	assert.Equal(t, 1.0, src.List[0])

	slices, err := src.Slices(context.Background(), charts.Category10)
	require.NoError(t, err)
	assert.Equal(t, []charts.Slice{
		{Value: 1, Color: "red"},
		{Value: 2, Color: charts.Category10.At(1)},
		{Value: 3, Color: charts.Category10.At(2)},
	}, slices)
}

func TestSelectors(t *testing.T) {
	row := []string{"a", "1", " 2.5", "x"}

	f, err := SelectSingle(2).Select(row)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	f, err = SelectSum(ExpandRange(1, 2)).Select(row)
	require.NoError(t, err)
	assert.Equal(t, 3.5, f)

	_, err = SelectSingle(4).Select(row)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = SelectSingle(-1).Select(row)
	assert.ErrorIs(t, err, ErrIndex)

	_, err = SelectSingle(3).Select(row)
	assert.Error(t, err)

	assert.Equal(t, []int{3, 4, 5}, ExpandRange(3, 5))
	assert.Empty(t, ExpandRange(5, 3))
}
