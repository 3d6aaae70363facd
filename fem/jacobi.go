package fem

import (
	"math"
)

// JacobiBasis evaluates the orthonormal Jacobi polynomials of type
// (alpha,beta) > -1 for orders 0..N at the point x, storing order n in P[n].
// For alpha = beta = 0 these are the orthonormal Legendre polynomials on [-1,1].
func JacobiBasis(x, alpha, beta float64, N int, P []float64) {
	var (
		ab  = alpha + beta
		ab1 = alpha + beta + 1.0
		a1  = alpha + 1.0
		b1  = beta + 1.0
	)
	if N < 0 {
		return
	}
	// Initial values P_0(x) and P_1(x)
	gamma0 := math.Pow(2.0, ab1) / ab1 * math.Gamma(a1) * math.Gamma(b1) / math.Gamma(ab1)
	P[0] = 1.0 / math.Sqrt(gamma0)
	if N == 0 {
		return
	}
	gamma1 := a1 * b1 / (ab + 3.0) * gamma0
	P[1] = ((ab+2.0)*x/2.0 + (alpha-beta)/2.0) / math.Sqrt(gamma1)
	if N == 1 {
		return
	}

	// Repeat value in recurrence
	aold := 2.0 / (2.0 + ab) * math.Sqrt(a1*b1/(ab+3.0))

	for i := 1; i <= N-1; i++ {
		h1 := 2.0*float64(i) + ab
		fi := float64(i)
		anew := 2.0 / (h1 + 2.0) * math.Sqrt((fi+1.0)*(fi+ab1)*(fi+a1)*(fi+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		P[i+1] = 1.0 / anew * (-aold*P[i-1] + (x-bnew)*P[i])
		aold = anew
	}
}

// LegendreBasis evaluates the orthonormal Legendre polynomials of order 0..N at x
func LegendreBasis(x float64, N int, P []float64) {
	JacobiBasis(x, 0, 0, N, P)
}
