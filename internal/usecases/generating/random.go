package generating

import (
	"math"
	"math/rand"
	"time"
)

// RandomSource fornece números uniformes em [0, 1). *rand.Rand satisfaz a interface.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource cria uma fonte baseada em math/rand. Semente 0 usa o relógio.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Distributions deriva distribuições a partir de uma RandomSource
type Distributions struct {
	source RandomSource
}

func NewDistributions(source RandomSource) *Distributions {
	return &Distributions{source: source}
}

// Uniform retorna um número uniforme em [0, 1)
func (d *Distributions) Uniform() float64 {
	return d.source.Float64()
}

// Index sorteia uniformemente um índice em [0, n)
func (d *Distributions) Index(n int) int {
	if n <= 1 {
		return 0
	}

	i := int(d.Uniform() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Normal usa a transformação de Box-Muller sobre dois sorteios uniformes
func (d *Distributions) Normal(mean, stdDev float64) float64 {
	// 1 - u fica em (0, 1], evitando log(0)
	u1 := 1 - d.Uniform()
	u2 := d.Uniform()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z
}

// Poisson usa o algoritmo multiplicativo de Knuth
func (d *Distributions) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}

	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= d.Uniform()
		if p <= limit {
			break
		}
	}
	return k - 1
}
