// Package assert holds test assertions on serialized FHIR content.
package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails the test if expected and actual do not hold the same JSON value.
//
// Property order and insignificant whitespace are ignored.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(jsonValue(t, expected), jsonValue(t, actual)); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonValue(t *testing.T, input string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(input), &v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, input)
	}
	return v
}
