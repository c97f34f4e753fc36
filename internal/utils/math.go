// internal/utils/math.go
package utils

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach сдвигает value к target не более чем на step и не проскакивает цель
func Approach(value, target, step float64) float64 {
	if value < target {
		if value+step > target {
			return target
		}
		return value + step
	}
	if value-step < target {
		return target
	}
	return value - step
}
