// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt ограничивает v диапазоном [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// SineIn, SineOut и SineInOut принимают t в [0, 1].
func SineIn(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

func SineOut(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Yoyo превращает бесконечно растущее время в волну 0 -> 1 -> 0 с
// периодом 2*half и сглаживанием SineInOut на каждом полупериоде.
func Yoyo(elapsed, half float64) float64 {
	if half <= 0 {
		return 0
	}
	cycle := math.Mod(elapsed, 2*half)
	if cycle < half {
		return SineInOut(cycle / half)
	}
	return SineInOut(1 - (cycle-half)/half)
}

// NormalizeDegrees приводит угол к [0, 360)
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}
