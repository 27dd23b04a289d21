package train

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/decisionai/candidate-ranker/internal/gbm"
)

// Save serializes the model to path, creating parent directories as
// needed. The write goes to a temp file in the same directory and is
// renamed into place under an advisory lock, so a concurrent reader
// never observes a partially written artifact.
func Save(model *gbm.Booster, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating model directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking model artifact %s: %w", path, err)
	}
	defer lock.Unlock()

	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("serializing model: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp model file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing model artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp model file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing model artifact %s: %w", path, err)
	}
	return nil
}

// Load restores a model saved by Save, with its full capability set.
func Load(path string) (*gbm.Booster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %s: %w", path, err)
	}

	var model gbm.Booster
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}
	return &model, nil
}
