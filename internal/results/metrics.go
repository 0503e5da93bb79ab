package results

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// AUC returns the area under the series curve normalised by its x span, the
// scalar summary used to rank methods in threshold sweeps. The points must
// be sorted by x.
func (s *Series) AUC() (float64, error) {
	if len(s.Points) < 2 {
		return 0, fmt.Errorf("series %q needs at least two points for AUC", s.Method)
	}

	xs := make([]float64, len(s.Points))
	ys := make([]float64, len(s.Points))
	for i, pt := range s.Points {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	if !sort.Float64sAreSorted(xs) {
		return 0, fmt.Errorf("series %q is not sorted by x", s.Method)
	}
	span := xs[len(xs)-1] - xs[0]
	if span == 0 {
		return 0, fmt.Errorf("series %q has zero x span", s.Method)
	}

	return integrate.Trapezoid(xs, ys) / span, nil
}

// MethodAUC is the AUC summary for one method's curve.
type MethodAUC struct {
	Method string
	AUC    float64
}

// AUCSummary computes the normalised AUC of every series, in file order.
func (rs *ResultSet) AUCSummary() ([]MethodAUC, error) {
	out := make([]MethodAUC, 0, len(rs.Series))
	for i := range rs.Series {
		v, err := rs.Series[i].AUC()
		if err != nil {
			return nil, err
		}
		out = append(out, MethodAUC{Method: rs.Series[i].Method, AUC: v})
	}
	return out, nil
}
