package utils

// Dot is the plain left to right inner product of a and b over len(a).
func Dot(a, b []float64) (sum float64) {
	for i, val := range a {
		sum += val * b[i]
	}
	return
}

// Axpy accumulates y += alpha*x
func Axpy(alpha float64, x, y []float64) {
	for i, val := range x {
		y[i] += alpha * val
	}
}
