package genetics

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const geneSize = 8

// Chromosome is an immutable, fixed-length sequence of real-valued genes.
//
// The genes are packed into a string so that Chromosome is comparable: two
// chromosomes are == exactly when they hold the same genes in the same order,
// which makes Chromosome usable as a map key. Negative zero is stored as zero
// so that numerically equal genes compare equal.
type Chromosome struct {
	packed string
}

// NewChromosome creates a chromosome holding a copy of genes.
func NewChromosome(genes ...float64) Chromosome {
	buf := make([]byte, len(genes)*geneSize)
	for i, g := range genes {
		if g == 0 {
			g = 0 // drop the sign of -0
		}
		binary.LittleEndian.PutUint64(buf[i*geneSize:], math.Float64bits(g))
	}
	return Chromosome{packed: string(buf)}
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c.packed) / geneSize
}

// Gene returns the gene at index i. It panics if i is out of range.
func (c Chromosome) Gene(i int) float64 {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("gene index %d out of range for chromosome of length %d", i, c.Len()))
	}
	return math.Float64frombits(binary.LittleEndian.Uint64([]byte(c.packed[i*geneSize : (i+1)*geneSize])))
}

// Genes returns a fresh copy of the genes. Modifying it does not affect c.
func (c Chromosome) Genes() []float64 {
	genes := make([]float64, c.Len())
	for i := range genes {
		genes[i] = math.Float64frombits(binary.LittleEndian.Uint64([]byte(c.packed[i*geneSize : (i+1)*geneSize])))
	}
	return genes
}

// Equal reports whether c and other hold the same genes in the same order.
func (c Chromosome) Equal(other Chromosome) bool {
	return c.packed == other.packed
}

// String returns the genes in tuple form, e.g. "(1, 0.5, -2)".
func (c Chromosome) String() string {
	genes := c.Genes()
	parts := make([]string, len(genes))
	for i, g := range genes {
		parts[i] = strconv.FormatFloat(g, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RandomChromosome creates a chromosome of the given length with genes drawn
// uniformly from [minVal, maxVal).
func RandomChromosome(rng RandomSource, length int, minVal, maxVal float64) Chromosome {
	genes := make([]float64, length)
	for i := range genes {
		genes[i] = uniform(rng, minVal, maxVal)
	}
	return NewChromosome(genes...)
}
