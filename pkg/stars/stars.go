package stars

import "math"

// Glyph is the render state of a single star position.
type Glyph string

const (
	Full  Glyph = "full"
	Half  Glyph = "half"
	Empty Glyph = "empty"
)

// Count is the number of star positions in a pattern.
const Count = 5

// Pattern maps a 0-5 rating to the five star glyphs: position i is full
// below the integer part, half for the single fractional position, empty
// above. Out-of-range inputs are clamped rather than rejected.
func Pattern(rating float64) [Count]Glyph {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}
	if rating > Count {
		rating = Count
	}

	var pattern [Count]Glyph
	whole := math.Floor(rating)
	for i := 0; i < Count; i++ {
		switch {
		case float64(i) < whole:
			pattern[i] = Full
		case float64(i) < rating:
			pattern[i] = Half
		default:
			pattern[i] = Empty
		}
	}
	return pattern
}

// Slice returns the pattern as a []string, the shape embedded in API
// payloads.
func Slice(rating float64) []string {
	pattern := Pattern(rating)
	out := make([]string, Count)
	for i, g := range pattern {
		out[i] = string(g)
	}
	return out
}
