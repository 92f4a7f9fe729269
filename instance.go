package atsp

import (
	"fmt"
	"math/rand"
)

// NewInstance builds an instance from coordinate arrays and a flat cost list
// of length n*(n-1). The cost list is consumed in lexicographic (i, j) order
// over all ordered pairs with i != j. Source and sink default to 0 and n-1.
func NewInstance(xs, ys, costs []float64) (*Instance, error) {
	if len(xs) != len(ys) {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("coordinate arrays differ in length: %d vs %d", len(xs), len(ys))}
	}
	n := len(xs)
	coordinates := make([][]float64, n)
	for i := 0; i < n; i++ {
		coordinates[i] = []float64{xs[i], ys[i]}
	}
	inst := &Instance{
		Type:            "ATSP-PATH",
		Dimension:       n,
		DisplayDataType: "COORD_DISPLAY",
		NodeCoordinates: coordinates,
		ArcCosts:        append([]float64(nil), costs...),
		SourceVertex:    0,
		SinkVertex:      n - 1,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

// Validate checks the structural invariants. It is called by NewInstance and
// by the mains on instances unmarshalled from JSON.
func (inst *Instance) Validate() error {
	n := inst.Dimension
	if n < 2 {
		return &InvalidInputError{Reason: fmt.Sprintf("need at least 2 vertices, got %d", n)}
	}
	if len(inst.NodeCoordinates) != n {
		return &InvalidInputError{Reason: fmt.Sprintf("expected %d coordinate pairs, got %d", n, len(inst.NodeCoordinates))}
	}
	if len(inst.ArcCosts) != n*(n-1) {
		return &InvalidInputError{Reason: fmt.Sprintf("expected %d arc costs, got %d", n*(n-1), len(inst.ArcCosts))}
	}
	if inst.SourceVertex < 0 || inst.SourceVertex >= n || inst.SinkVertex < 0 || inst.SinkVertex >= n {
		return &InvalidInputError{Reason: fmt.Sprintf("source %d or sink %d out of range [0,%d)", inst.SourceVertex, inst.SinkVertex, n)}
	}
	if inst.SourceVertex == inst.SinkVertex {
		return &InvalidInputError{Reason: fmt.Sprintf("source and sink must differ, both are %d", inst.SourceVertex)}
	}
	return nil
}

// Vertices returns the vertex identifiers in order 0..n-1.
func (inst *Instance) Vertices() []int {
	vertices := make([]int, inst.Dimension)
	for i := range vertices {
		vertices[i] = i
	}
	return vertices
}

// Arcs returns all n*(n-1) ordered pairs in lexicographic order.
func (inst *Instance) Arcs() [][2]int {
	n := inst.Dimension
	arcs := make([][2]int, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			arcs = append(arcs, [2]int{i, j})
		}
	}
	return arcs
}

// Cost returns the cost of arc (i, j).
func (inst *Instance) Cost(i, j int) (float64, error) {
	n := inst.Dimension
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		return 0, &UnknownArcError{From: i, To: j}
	}
	return inst.ArcCosts[ArcIndex(i, j, n)], nil
}

// GenerateInstance builds a random instance: n coordinates uniform in
// [0,box)^2 and arc costs uniform in [-costRange, costRange). Costs are
// independent per ordered pair, so the result is asymmetric and may contain
// negative arcs - a stress generator, not a metric space.
func GenerateInstance(n int, box, costRange float64, rng *rand.Rand) (*Instance, error) {
	if n < 2 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("need at least 2 vertices, got %d", n)}
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = rng.Float64() * box
		ys[i] = rng.Float64() * box
	}
	costs := make([]float64, n*(n-1))
	for k := range costs {
		costs[k] = (rng.Float64()*2 - 1) * costRange
	}
	return NewInstance(xs, ys, costs)
}
