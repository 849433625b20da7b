package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameValue(t *testing.T) {
	m := map[string]int{"a": 1}
	s := []int{1, 2}
	p := &struct{ n int }{1}

	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 0, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"int vs int64", int(1), int64(1), false},
		{"equal strings", "x", "x", true},
		{"same map identity", m, m, true},
		{"equal maps distinct identity", m, map[string]int{"a": 1}, false},
		{"same slice identity", s, s, true},
		{"equal slices distinct identity", s, []int{1, 2}, false},
		{"same pointer", p, p, true},
		{"distinct pointers equal contents", p, &struct{ n int }{1}, false},
		{"comparable structs by value", struct{ n int }{1}, struct{ n int }{1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sameValue(tc.a, tc.b))
		})
	}
}

func TestSameValueNonComparableNeverEqual(t *testing.T) {
	type holder struct{ xs []int }
	a := holder{xs: []int{1}}
	b := holder{xs: []int{1}}

	// Struct containing a slice is not comparable and not a reference
	// kind: writes always notify.
	assert.False(t, sameValue(a, b))
	assert.False(t, sameValue(a, a))
}
