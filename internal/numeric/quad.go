package numeric

import (
	"math"
	"sync"
)

type glRule struct {
	nodes, weights []float64
}

var (
	glMu    sync.Mutex
	glCache = map[int]glRule{}
)

// legendreRule computes the Gauss-Legendre nodes and weights on [-1, 1] by
// Newton iteration on the Legendre polynomial roots. Rules are cached per
// order.
func legendreRule(n int) glRule {
	glMu.Lock()
	defer glMu.Unlock()
	if r, ok := glCache[n]; ok {
		return r
	}

	nodes := make([]float64, n)
	weights := make([]float64, n)
	m := (n + 1) / 2
	for i := 1; i <= m; i++ {
		x := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
		var dp float64
		for {
			p0, p1 := 1.0, 0.0
			for j := 1; j <= n; j++ {
				p2 := p1
				p1 = p0
				p0 = ((2*float64(j)-1)*x*p1 - (float64(j)-1)*p2) / float64(j)
			}
			dp = float64(n) * (x*p0 - p1) / (x*x - 1)
			dx := p0 / dp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		nodes[i-1] = -x
		weights[i-1] = 2 / ((1 - x*x) * dp * dp)
		nodes[n-i] = x
		weights[n-i] = weights[i-1]
	}

	r := glRule{nodes: nodes, weights: weights}
	glCache[n] = r
	return r
}

// GaussLegendre integrates f over [a, b] with an n-point Gauss-Legendre rule.
func GaussLegendre(f func(float64) float64, a, b float64, n int) float64 {
	r := legendreRule(n)
	half := (b - a) / 2
	mid := (a + b) / 2
	sum := 0.0
	for i, x := range r.nodes {
		sum += r.weights[i] * f(mid+half*x)
	}
	return half * sum
}
