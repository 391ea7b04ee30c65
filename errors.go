package charts

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrInvalidValue      = errors.New("invalid value")
	ErrDegenerateDataset = errors.New("degenerate dataset")
	ErrNoSliceMatched    = errors.New("no slice matched")
)
