package shared

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLowerSet(t *testing.T) {
	set := LowerSet([]string{"Foo", "foo", "BAR"})
	if diff := cmp.Diff([]string{"bar", "foo"}, SortedKeys(set)); diff != "" {
		t.Fatalf("unexpected set (-want +got):\n%s", diff)
	}
}
