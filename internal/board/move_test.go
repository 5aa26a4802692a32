package board

import (
	"reflect"
	"testing"
)

func TestArrayMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}},
		{name: "same index", from: 1, to: 1, want: []string{"a", "b", "c", "d"}},
		{name: "missing source", from: -1, to: 1, want: []string{"a", "b", "c", "d"}},
		{name: "missing target", from: 1, to: 9, want: []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := []string{"a", "b", "c", "d"}
			got := arrayMove(in, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("arrayMove(%d, %d):\n got: %v\nwant: %v", tt.from, tt.to, got, tt.want)
			}
			if !reflect.DeepEqual(in, []string{"a", "b", "c", "d"}) {
				t.Fatalf("input mutated: %v", in)
			}
		})
	}
}
