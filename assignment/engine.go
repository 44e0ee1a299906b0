package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pushrelabel/activeset"
	"github.com/katalvlaran/pushrelabel/stargraph"
	"github.com/katalvlaran/pushrelabel/vecint"
)

// Engine computes an integer minimum-cost perfect matching over a frozen
// bipartite *stargraph.Graph (left nodes [0,k), right nodes [k,2k), every
// arc left→right) via Goldberg–Kennedy cost-scaling.
type Engine struct {
	g   *stargraph.Graph
	cfg Config
	k   int

	status Status

	cost   *vecint.Dense[Quantity] // unscaled, per forward arc
	scaled *vecint.Dense[Quantity] // scaled, per forward arc

	price       *vecint.Dense[Quantity]         // indexed by full node index; only [k,2k) used
	matchedArc  *vecint.Dense[stargraph.ArcIndex] // indexed by left node [0,k)
	matchedLeft *vecint.Dense[stargraph.NodeIndex] // indexed by full node index; only [k,2k) used

	active container

	eps             Quantity
	priceLowerBound Quantity
	totalCost       Quantity
}

// New constructs an Engine over a bipartite graph g with k left nodes
// [0,k) and k right nodes [k,2k).
func New(g *stargraph.Graph, k int, cfg Config) *Engine {
	m := g.MaxArcs()
	n := g.MaxNodes()

	e := &Engine{
		g:           g,
		cfg:         cfg,
		k:           k,
		status:      NotSolved,
		cost:        vecint.NewDense[Quantity](m),
		scaled:      vecint.NewDense[Quantity](m),
		price:       vecint.NewDense[Quantity](n),
		matchedArc:  vecint.NewDense[stargraph.ArcIndex](k),
		matchedLeft: vecint.NewDense[stargraph.NodeIndex](n),
	}
	e.matchedArc.Fill(stargraph.NilArc)
	e.matchedLeft.Fill(stargraph.NilNode)

	if cfg.UseStackOrder {
		e.active = stackContainer{activeset.NewStack[int]()}
	} else {
		e.active = queueContainer{activeset.NewQueue[int]()}
	}

	return e
}

// SetArcCost sets the unscaled cost of forward arc a (which must run
// left→right).
func (e *Engine) SetArcCost(a stargraph.ArcIndex, cost Quantity) {
	e.cost.Set(int(a), cost)
	e.status = NotSolved
}

// Status returns the outcome of the most recent ComputeAssignment.
func (e *Engine) Status() Status { return e.status }

// Cost returns the sum of unscaled costs over matching arcs, valid only
// when Status() == Optimal.
func (e *Engine) Cost() Quantity { return e.totalCost }

// AssignmentArc returns left's matching arc, or stargraph.NilArc if left is
// unmatched (only possible when Status() != Optimal).
func (e *Engine) AssignmentArc(left stargraph.NodeIndex) stargraph.ArcIndex {
	return e.matchedArc.Get(int(left))
}

// Mate returns head(AssignmentArc(left)), the right node left is matched
// to.
func (e *Engine) Mate(left stargraph.NodeIndex) stargraph.NodeIndex {
	a := e.AssignmentArc(left)
	if a == stargraph.NilArc {
		return stargraph.NilNode
	}
	return e.g.Head(a)
}

// ComputeAssignment runs cost-scaling to completion, returning true iff a
// perfect matching was found.
func (e *Engine) ComputeAssignment() bool {
	if e.k == 0 {
		e.status = Optimal
		return true
	}

	for l := 0; l < e.k; l++ {
		it := e.g.Outgoing(stargraph.NodeIndex(l))
		if _, ok := it.Next(); !ok {
			e.status = BadInput
			return false
		}
	}

	e.setupCostScaling()
	e.price.Reset()
	e.matchedArc.Fill(stargraph.NilArc)
	e.matchedLeft.Fill(stargraph.NilNode)

	alpha := e.cfg.Alpha
	if alpha <= 1 {
		alpha = 5
	}

	e.priceLowerBound = -priceReductionBound(e.k, e.eps, alpha) * (alpha - 1)

	for {
		if !e.cfg.tick() {
			e.status = NotSolved
			return false
		}

		if !e.refine() {
			e.status = Infeasible
			return false
		}
		if e.cfg.Verbose {
			fmt.Printf("assignment: refine phase complete at eps=%d\n", e.eps)
		}
		if e.eps <= 1 {
			break
		}
		e.eps = e.eps / alpha
		if e.eps < 1 {
			e.eps = 1
		}
	}

	e.computeTotalCost()

	if e.cfg.CheckResult && !e.checkInvariants() {
		e.status = BadResult
		return false
	}

	e.status = Optimal
	return true
}

// setupCostScaling multiplies every unscaled cost by α = 1 + k/2 and sets
// the initial ε to the largest scaled magnitude.
func (e *Engine) setupCostScaling() {
	factor := Quantity(1 + e.k/2)
	m := e.g.NumArcs()

	var maxAbs Quantity
	for a := 0; a < m; a++ {
		sc := e.cost.Get(a) * factor
		e.scaled.Set(a, sc)
		abs := sc
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	}
	e.eps = maxAbs
	if e.eps < 1 {
		e.eps = 1
	}
}

// priceReductionBound computes ⌈(k−1)/2 · eps · (1+alpha)⌉, clamped to
// Quantity's max to avoid overflow.
func priceReductionBound(k int, eps, alpha Quantity) Quantity {
	const limit = Quantity(math.MaxInt64) / 4

	km1 := Quantity(k - 1)
	if km1 < 0 {
		km1 = 0
	}
	if km1 > limit || eps > limit || (1+alpha) > limit {
		return Quantity(math.MaxInt64)
	}

	num := km1 * eps
	if num != 0 && num/km1 != eps {
		return Quantity(math.MaxInt64) // overflow in multiplication
	}
	num *= 1 + alpha
	if num < 0 {
		return Quantity(math.MaxInt64)
	}

	return (num + 1) / 2
}

// computeTotalCost sums unscaled costs over matching arcs.
func (e *Engine) computeTotalCost() {
	var total Quantity
	for l := 0; l < e.k; l++ {
		a := e.matchedArc.Get(l)
		total += e.cost.Get(int(a))
	}
	e.totalCost = total
}

// checkInvariants re-verifies matching completeness: every left node is
// matched to a distinct right node.
func (e *Engine) checkInvariants() bool {
	seen := make([]bool, e.k)
	for l := 0; l < e.k; l++ {
		a := e.matchedArc.Get(l)
		if a == stargraph.NilArc {
			return false
		}
		r := e.g.Head(a)
		idx := int(r) - e.k
		if idx < 0 || idx >= e.k || seen[idx] {
			return false
		}
		seen[idx] = true
	}

	return true
}
