package gbm

import (
	"encoding/json"
	"fmt"
)

// boosterJSON is the on-disk shape of a trained model. The format is
// opaque to callers; the only contract is an exact round-trip of the
// prediction, column and importance capabilities.
type boosterJSON struct {
	Params        Params   `json:"params"`
	BaseScore     float64  `json:"base_score"`
	BestIteration int      `json:"best_iteration"`
	FeatureNames  []string `json:"feature_names"`
	Trees         []*node  `json:"trees"`
}

// MarshalJSON serializes the full ensemble, including trees past the
// best iteration, so a reload reproduces the trained state exactly.
func (b *Booster) MarshalJSON() ([]byte, error) {
	return json.Marshal(boosterJSON{
		Params:        b.params,
		BaseScore:     b.baseScore,
		BestIteration: b.bestIteration,
		FeatureNames:  b.featureNames,
		Trees:         b.trees,
	})
}

// UnmarshalJSON restores a serialized booster, validating the invariants
// prediction depends on.
func (b *Booster) UnmarshalJSON(data []byte) error {
	var raw boosterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding model: %w", err)
	}
	if len(raw.FeatureNames) == 0 {
		return fmt.Errorf("model artifact has no feature names")
	}
	if raw.BestIteration < 0 || raw.BestIteration > len(raw.Trees) {
		return fmt.Errorf("model artifact best_iteration %d out of range for %d trees", raw.BestIteration, len(raw.Trees))
	}

	b.params = raw.Params
	b.baseScore = raw.BaseScore
	b.bestIteration = raw.BestIteration
	b.featureNames = raw.FeatureNames
	b.trees = raw.Trees
	return nil
}
