package quakeglobe

import "github.com/chewxy/math32"

func clampf(value, min, max float32) float32 {
	return math32.Max(min, math32.Min(max, value))
}
