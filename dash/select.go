package dash

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrIndex = errors.New("invalid index")

// Selector extracts the value of a row.
type Selector interface {
	Select([]string) (float64, error)
}

type single struct {
	index int
}

func SelectSingle(i int) Selector {
	return single{
		index: i,
	}
}

func (s single) Select(row []string) (float64, error) {
	return parseColumn(row, s.index)
}

type summer struct {
	index []int
}

// SelectSum adds the values found in each of the given columns.
func SelectSum(list []int) Selector {
	return summer{
		index: list,
	}
}

func (s summer) Select(row []string) (float64, error) {
	var sum float64
	for _, i := range s.index {
		f, err := parseColumn(row, i)
		if err != nil {
			return 0, err
		}
		sum += f
	}
	return sum, nil
}

func ExpandRange(fst, lst int) []int {
	var list []int
	for i := fst; i <= lst; i++ {
		list = append(list, i)
	}
	return list
}

func parseColumn(row []string, i int) (float64, error) {
	if i < 0 || i >= len(row) {
		return 0, errors.Wrapf(ErrIndex, "column %d (row has %d)", i, len(row))
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "column %d", i)
	}
	return f, nil
}
