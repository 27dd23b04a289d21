package train

import "sort"

// Fold is one train/validation partition of row indices.
type Fold struct {
	Train      []int
	Validation []int
}

// GroupKFold splits row indices into k folds by group key, so no group
// ever straddles a fold's train/validation boundary. Whole groups are
// assigned greedily, largest first, to the fold with the fewest samples;
// ties break lexicographically on group id, keeping fold indices stable
// across runs on the same data.
func GroupKFold(groups []string, k int) []Fold {
	if k < 2 || len(groups) == 0 {
		return nil
	}

	byGroup := make(map[string][]int)
	for i, g := range groups {
		byGroup[g] = append(byGroup[g], i)
	}
	if len(byGroup) < k {
		k = len(byGroup)
		if k < 2 {
			return nil
		}
	}

	ids := make([]string, 0, len(byGroup))
	for g := range byGroup {
		ids = append(ids, g)
	}
	sort.Slice(ids, func(a, b int) bool {
		na, nb := len(byGroup[ids[a]]), len(byGroup[ids[b]])
		if na != nb {
			return na > nb
		}
		return ids[a] < ids[b]
	})

	assignment := make(map[string]int, len(ids))
	sizes := make([]int, k)
	for _, g := range ids {
		lightest := 0
		for f := 1; f < k; f++ {
			if sizes[f] < sizes[lightest] {
				lightest = f
			}
		}
		assignment[g] = lightest
		sizes[lightest] += len(byGroup[g])
	}

	folds := make([]Fold, k)
	for i, g := range groups {
		f := assignment[g]
		for other := range folds {
			if other == f {
				folds[other].Validation = append(folds[other].Validation, i)
			} else {
				folds[other].Train = append(folds[other].Train, i)
			}
		}
	}

	return folds
}
