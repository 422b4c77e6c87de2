package limiter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTailBounds(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		n         int
		wantStart int
		wantEnd   int
	}{
		{name: "disabled", length: 4, n: 0, wantStart: 0, wantEnd: 4},
		{name: "negative disables", length: 4, n: -2, wantStart: 0, wantEnd: 4},
		{name: "tail", length: 4, n: 1, wantStart: 3, wantEnd: 4},
		{name: "tail larger than input", length: 2, n: 9, wantStart: 0, wantEnd: 2},
		{name: "tail on empty", length: 0, n: 2, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := TailBounds(tt.length, tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTail(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "inactive keeps all", n: 0, want: items},
		{name: "last two", n: 2, want: []string{"d", "e"}},
		{name: "larger than input", n: 9, want: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tail(items, tt.n))
		})
	}

	assert.Equal(t, []string{"to"}, Tail([]string{"", "long", "path", "to"}, 1))
	assert.Empty(t, Tail([]string{}, 3))
}

func TestTailDoesNotAliasInput(t *testing.T) {
	items := []int{1, 2, 3}
	out := Tail(items, 2)
	out[0] = 99
	assert.Equal(t, []int{1, 2, 3}, items)
}
