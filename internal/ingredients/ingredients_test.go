package ingredients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "simple pair",
			in:   "salt, water",
			want: []string{"salt", "water"},
		},
		{
			name: "no spaces",
			in:   "salt,water",
			want: []string{"salt", "water"},
		},
		{
			name: "order preserved",
			in:   "water, salt, flour",
			want: []string{"water", "salt", "flour"},
		},
		{
			name: "ragged whitespace",
			in:   "  olive oil ,\tgarlic ,  ",
			want: []string{"olive oil", "garlic"},
		},
		{
			name: "single entry",
			in:   "eggs",
			want: []string{"eggs"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "only separators",
			in:   " , , ",
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, Parse(test.in))
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "salt, water", Join([]string{"salt", "water"}))
	assert.Empty(t, Join(nil))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	list := []string{"butter", "brown sugar", "oats"}
	assert.Equal(t, list, Parse(Join(list)))
}
