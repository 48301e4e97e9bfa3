package stars

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	tests := []struct {
		name   string
		rating float64
		want   [Count]Glyph
	}{
		{
			name:   "three and a half",
			rating: 3.5,
			want:   [Count]Glyph{Full, Full, Full, Half, Empty},
		},
		{
			name:   "zero",
			rating: 0,
			want:   [Count]Glyph{Empty, Empty, Empty, Empty, Empty},
		},
		{
			name:   "five",
			rating: 5,
			want:   [Count]Glyph{Full, Full, Full, Full, Full},
		},
		{
			name:   "whole number has no half star",
			rating: 4,
			want:   [Count]Glyph{Full, Full, Full, Full, Empty},
		},
		{
			name:   "small fraction yields one half star",
			rating: 0.1,
			want:   [Count]Glyph{Half, Empty, Empty, Empty, Empty},
		},
		{
			name:   "just under five",
			rating: 4.9,
			want:   [Count]Glyph{Full, Full, Full, Full, Half},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pattern(tt.rating))
		})
	}
}

func TestPattern_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Pattern(0), Pattern(-1.5))
	assert.Equal(t, Pattern(5), Pattern(7.2))
	assert.Equal(t, Pattern(0), Pattern(math.NaN()))
}

func TestSlice(t *testing.T) {
	assert.Equal(t, []string{"full", "full", "full", "half", "empty"}, Slice(3.5))
}
