package preprocess

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Paths locates the three raw JSON exports.
type Paths struct {
	Vagas      string
	Prospects  string
	Applicants string
}

// Raw holds the three decoded documents.
type Raw struct {
	Vagas      map[string]RawVaga
	Prospects  map[string]RawProspectGroup
	Applicants map[string]RawApplicant
}

// LoadRaw reads and decodes the three documents concurrently. They are
// independent files, so a failure on any of them cancels the rest and is
// reported with the offending path. An unreadable or malformed file is
// fatal: the pipeline never substitutes an empty dataset.
func LoadRaw(ctx context.Context, paths Paths) (*Raw, error) {
	raw := &Raw{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return loadJSON(paths.Vagas, &raw.Vagas) })
	g.Go(func() error { return loadJSON(paths.Prospects, &raw.Prospects) })
	g.Go(func() error { return loadJSON(paths.Applicants, &raw.Applicants) })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
