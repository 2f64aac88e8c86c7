package kubera

import (
	"fmt"
	"math"
)

// Percent is a relative change, in percent (5.0 means 5%). It is derived from
// Money divisions, so comparisons must absorb float64 noise.
type Percent float64

// percentEpsilon is the tolerance for Percent comparisons.
const percentEpsilon = 1e-4

// Equal reports whether two percentages are equal within percentEpsilon.
func (p Percent) Equal(q Percent) bool {
	return math.Abs(float64(p-q)) < percentEpsilon
}

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", p) }

// SignedString renders the percent with an explicit sign. A zero change (of
// either float sign) renders as "-", matching Money.SignedString.
func (p Percent) SignedString() string {
	s := fmt.Sprintf("%+.2f%%", p)
	if s == "+0.00%" || s == "-0.00%" {
		return "-"
	}
	return s
}
