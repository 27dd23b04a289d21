package gbm

import "sort"

// node is one vertex of a regression tree. Leaves carry the shrunken
// output value; internal nodes route on feature <= threshold.
type node struct {
	Leaf      bool    `json:"leaf"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Gain      float64 `json:"gain,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Left      *node   `json:"left,omitempty"`
	Right     *node   `json:"right,omitempty"`
}

func (n *node) predict(row []float64) float64 {
	for !n.Leaf {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Value
}

// addGains accumulates per-feature split gain into imp.
func (n *node) addGains(imp []float64) {
	if n == nil || n.Leaf {
		return
	}
	imp[n.Feature] += n.Gain
	n.Left.addGains(imp)
	n.Right.addGains(imp)
}

// openLeaf is a leaf still eligible for splitting during leaf-wise
// growth.
type openLeaf struct {
	n       *node
	samples []int

	bestGain      float64
	bestFeature   int
	bestThreshold float64
	bestLeft      []int
	bestRight     []int
}

// growTree builds one regression tree leaf-wise: the open leaf with the
// highest split gain is expanded first, until NumLeaves leaves exist or
// no split improves the objective.
func growTree(X [][]float64, grad, hess []float64, samples []int, p Params) *node {
	root := &node{Leaf: true}
	setLeafValue(root, grad, hess, samples, p)

	open := []*openLeaf{{n: root, samples: samples}}
	findBestSplit(X, grad, hess, open[0], p)

	leaves := 1
	for leaves < p.NumLeaves {
		best := -1
		for i, l := range open {
			if l.bestGain > 0 && (best < 0 || l.bestGain > open[best].bestGain) {
				best = i
			}
		}
		if best < 0 {
			break
		}

		l := open[best]
		open = append(open[:best], open[best+1:]...)

		left := &node{Leaf: true}
		right := &node{Leaf: true}
		setLeafValue(left, grad, hess, l.bestLeft, p)
		setLeafValue(right, grad, hess, l.bestRight, p)

		l.n.Leaf = false
		l.n.Feature = l.bestFeature
		l.n.Threshold = l.bestThreshold
		l.n.Gain = l.bestGain
		l.n.Value = 0
		l.n.Left = left
		l.n.Right = right

		lo := &openLeaf{n: left, samples: l.bestLeft}
		ro := &openLeaf{n: right, samples: l.bestRight}
		findBestSplit(X, grad, hess, lo, p)
		findBestSplit(X, grad, hess, ro, p)
		open = append(open, lo, ro)

		leaves++
	}

	return root
}

func setLeafValue(n *node, grad, hess []float64, samples []int, p Params) {
	var g, h float64
	for _, i := range samples {
		g += grad[i]
		h += hess[i]
	}
	n.Value = -p.LearningRate * g / (h + p.Lambda)
}

// findBestSplit scans every feature for the exact split maximizing the
// regularized gain. Thresholds fall midway between adjacent distinct
// values.
func findBestSplit(X [][]float64, grad, hess []float64, l *openLeaf, p Params) {
	l.bestGain = 0
	if len(l.samples) < 2*p.MinLeafSamples {
		return
	}

	var totalG, totalH float64
	for _, i := range l.samples {
		totalG += grad[i]
		totalH += hess[i]
	}
	parentScore := totalG * totalG / (totalH + p.Lambda)

	nFeatures := len(X[0])
	order := make([]int, len(l.samples))

	for f := 0; f < nFeatures; f++ {
		copy(order, l.samples)
		sort.SliceStable(order, func(a, b int) bool {
			return X[order[a]][f] < X[order[b]][f]
		})

		var leftG, leftH float64
		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			leftG += grad[i]
			leftH += hess[i]

			cur, next := X[i][f], X[order[pos+1]][f]
			if cur == next {
				continue
			}
			if pos+1 < p.MinLeafSamples || len(order)-pos-1 < p.MinLeafSamples {
				continue
			}

			rightG := totalG - leftG
			rightH := totalH - leftH
			gain := 0.5 * (leftG*leftG/(leftH+p.Lambda) +
				rightG*rightG/(rightH+p.Lambda) -
				parentScore)

			if gain > l.bestGain {
				l.bestGain = gain
				l.bestFeature = f
				l.bestThreshold = (cur + next) / 2
				l.bestLeft = append(l.bestLeft[:0], order[:pos+1]...)
				l.bestRight = append(l.bestRight[:0], order[pos+1:]...)
			}
		}
	}
}
