package pathgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

var floatComparer = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Distance(want); d > epsilon {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func approxPoints(epsilon float64) cmp.Option {
	return cmp.Comparer(func(p1, p2 Point) bool {
		return p1.Distance(p2) <= epsilon
	})
}

func approxFloat(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func approxVecs(epsilon float64) cmp.Option {
	return cmp.Comparer(func(v1, v2 Vec2) bool {
		return v1.Sub(v2).Hypot() <= epsilon
	})
}
