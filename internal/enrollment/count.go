package enrollment

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Count is a single enrollment figure. The zero value is absent.
type Count struct {
	value   float64
	present bool
}

// Missing is the absent Count.
var Missing = Count{}

// Of returns a present Count holding v.
func Of(v float64) Count {
	return Count{value: v, present: true}
}

// FromRaw converts a raw table value. Negative and NaN values are the missing marker.
func FromRaw(v float64) Count {
	if math.IsNaN(v) || v < 0 {
		return Missing
	}
	return Of(v)
}

// Present reports whether the count holds a value.
func (c Count) Present() bool { return c.present }

// Value returns the held value and whether it is present.
func (c Count) Value() (float64, bool) { return c.value, c.present }

// Int truncates the value toward zero. Absent counts yield 0.
func (c Count) Int() int {
	if !c.present {
		return 0
	}
	return int(c.value)
}

func (c Count) String() string {
	if !c.present {
		return "n/a"
	}
	return strconv.Itoa(c.Int())
}

// Values returns the present values of cs in order.
func Values(cs []Count) []float64 {
	out := make([]float64, 0, len(cs))
	for _, c := range cs {
		if c.present {
			out = append(out, c.value)
		}
	}
	return out
}

// Sum adds the present values. It is 0 when nothing is present.
func Sum(cs []Count) float64 {
	return floats.Sum(Values(cs))
}

// Total is like Sum but absent when nothing is present.
func Total(cs []Count) Count {
	vs := Values(cs)
	if len(vs) == 0 {
		return Missing
	}
	return Of(floats.Sum(vs))
}

// Max returns the largest present value.
func Max(cs []Count) Count {
	vs := Values(cs)
	if len(vs) == 0 {
		return Missing
	}
	return Of(floats.Max(vs))
}

// Min returns the smallest present value.
func Min(cs []Count) Count {
	vs := Values(cs)
	if len(vs) == 0 {
		return Missing
	}
	return Of(floats.Min(vs))
}

// Mean returns the arithmetic mean of the present values.
func Mean(cs []Count) Count {
	vs := Values(cs)
	if len(vs) == 0 {
		return Missing
	}
	return Of(floats.Sum(vs) / float64(len(vs)))
}

// FloorMean divides the sum of present values by their count, rounding down.
func FloorMean(cs []Count) Count {
	vs := Values(cs)
	if len(vs) == 0 {
		return Missing
	}
	return Of(math.Floor(floats.Sum(vs) / float64(len(vs))))
}

// Median returns the middle present value, averaging the two middle values
// when the number present is even.
func Median(cs []Count) Count {
	vs := Values(cs)
	n := len(vs)
	if n == 0 {
		return Missing
	}
	sort.Float64s(vs)
	if n%2 == 1 {
		return Of(vs[n/2])
	}
	return Of((vs[n/2-1] + vs[n/2]) / 2)
}

// Filter keeps the present counts for which keep returns true.
func Filter(cs []Count, keep func(float64) bool) []Count {
	var out []Count
	for _, c := range cs {
		if c.present && keep(c.value) {
			out = append(out, c)
		}
	}
	return out
}
