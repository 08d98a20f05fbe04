package forest

import (
	"math/rand"
	"sort"
)

// builder grows one tree at a time over bootstrap index sets.
type builder struct {
	x        [][]float64
	y        []int
	maxDepth int
	minLeaf  int
	subset   int
	features int
	rng      *rand.Rand
	imp      []float64 // accumulated impurity decrease per feature
	nodes    []Node
}

// grow appends the subtree for the given sample indices and returns
// its root node index.
func (b *builder) grow(indices []int, depth int) int32 {
	id := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Left: -1, Right: -1})

	ones := 0
	for _, i := range indices {
		ones += b.y[i]
	}
	prob := float64(ones) / float64(len(indices))
	b.nodes[id].Prob = prob

	// Pure node, depth limit, or too few samples to split.
	if ones == 0 || ones == len(indices) || depth >= b.maxDepth || len(indices) < 2*b.minLeaf {
		return id
	}

	feat, threshold, gain, ok := b.bestSplit(indices)
	if !ok {
		return id
	}

	left := make([]int, 0, len(indices))
	right := make([]int, 0, len(indices))
	for _, i := range indices {
		if b.x[i][feat] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	if len(left) < b.minLeaf || len(right) < b.minLeaf {
		return id
	}

	b.imp[feat] += gain * float64(len(indices))

	leftID := b.grow(left, depth+1)
	rightID := b.grow(right, depth+1)

	b.nodes[id].Feature = int32(feat)
	b.nodes[id].Threshold = threshold
	b.nodes[id].Left = leftID
	b.nodes[id].Right = rightID

	return id
}

// bestSplit evaluates a random feature subset and returns the split
// with the largest Gini impurity decrease.
func (b *builder) bestSplit(indices []int) (feat int, threshold, gain float64, ok bool) {
	n := len(indices)

	ones := 0
	for _, i := range indices {
		ones += b.y[i]
	}
	parent := gini(ones, n)
	if parent == 0 {
		return 0, 0, 0, false
	}

	candidates := b.sampleFeatures()

	sorted := make([]int, n)
	bestGain := 0.0

	for _, f := range candidates {
		copy(sorted, indices)
		sort.Slice(sorted, func(a, c int) bool {
			return b.x[sorted[a]][f] < b.x[sorted[c]][f]
		})

		leftOnes := 0
		for pos := 1; pos < n; pos++ {
			leftOnes += b.y[sorted[pos-1]]

			lo := b.x[sorted[pos-1]][f]
			hi := b.x[sorted[pos]][f]
			if lo == hi {
				continue
			}
			if pos < b.minLeaf || n-pos < b.minLeaf {
				continue
			}

			leftN := pos
			rightN := n - pos
			rightOnes := ones - leftOnes

			weighted := (float64(leftN)*gini(leftOnes, leftN) + float64(rightN)*gini(rightOnes, rightN)) / float64(n)
			g := parent - weighted
			if g > bestGain {
				bestGain = g
				feat = f
				threshold = (lo + hi) / 2
			}
		}
	}

	if bestGain <= 0 {
		return 0, 0, 0, false
	}

	return feat, threshold, bestGain, true
}

// sampleFeatures draws the per-split feature subset without
// replacement, in deterministic rng order.
func (b *builder) sampleFeatures() []int {
	if b.subset >= b.features {
		out := make([]int, b.features)
		for i := range out {
			out[i] = i
		}
		return out
	}

	perm := b.rng.Perm(b.features)
	out := perm[:b.subset]
	sort.Ints(out)
	return out
}

// gini returns the Gini impurity of a node with the given class-1
// count out of n samples.
func gini(ones, n int) float64 {
	if n == 0 {
		return 0
	}

	p := float64(ones) / float64(n)
	return 2 * p * (1 - p)
}
