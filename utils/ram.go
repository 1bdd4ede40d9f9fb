package utils

import (
	"github.com/docker/go-units"

	"github.com/projecteru2/memsize/memsize"
)

// HumanSize returns a binary human readable size
// e.g. 102400 -> 100KiB
func HumanSize[T memsize.Integer](n T) string {
	if n < 0 {
		return "-" + units.BytesSize(-float64(n))
	}
	return units.BytesSize(float64(n))
}
