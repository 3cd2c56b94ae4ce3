// Package typeoftest contains assertion helpers for tests.
package typeoftest

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vito/typeof/pkg/typeof"
)

// Equal fails the test unless a.Equal(b).
func Equal(t *testing.T, a, b typeof.Value) {
	t.Helper()

	if !a.Equal(b) {
		t.Logf("%s != %s\n%s", a, b, tryDiff(a.String(), b.String()))
		t.FailNow()
	}
}

// EqualRepr fails the test unless the two values print the same. Composites
// compare by identity, so this is how to compare separately built values.
func EqualRepr(t *testing.T, a, b typeof.Value) {
	t.Helper()

	if a.String() != b.String() {
		t.Logf("%s != %s\n%s", a, b, tryDiff(a.String(), b.String()))
		t.FailNow()
	}
}

// Verdicts fails the test if any named predicate disagrees with the
// expected verdict.
func Verdicts(t *testing.T, val typeof.Value, expected map[string]bool) {
	t.Helper()

	actual := map[string]bool{}
	for name := range expected {
		pred, err := typeof.LookupPredicate(name)
		if err != nil {
			t.Fatal(err)
		}

		actual[name] = pred.Check(val)
	}

	if diff := tryDiff(expected, actual); diff != "" {
		t.Logf("verdicts for %s (-want +got):\n%s", val, diff)
		t.FailNow()
	}
}

func tryDiff(a, b any) (res string) {
	defer func() {
		// cmp panics if equal is asymmetrical; recover for better failure ux
		err := recover()
		if err != nil {
			res = fmt.Sprintf("diff error: %s", err)
		}
	}()

	return cmp.Diff(a, b)
}
