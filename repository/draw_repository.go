package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"lottosync/models"
)

// ErrEmptyDataset is returned when a save would overwrite the dataset with
// nothing. The persisted file must never regress to empty.
var ErrEmptyDataset = errors.New("refusing to persist an empty dataset")

// FileDrawRepository implements the DrawRepository interface against a single
// JSON file holding the full draw collection
type FileDrawRepository struct {
	path string
}

// NewDrawRepository creates a new file-backed draw repository
func NewDrawRepository(path string) *FileDrawRepository {
	return &FileDrawRepository{path: path}
}

// Load reads the persisted draw collection. A missing or unreadable file and
// a file that does not parse as a draw array all yield an empty collection,
// never an error.
func (r *FileDrawRepository) Load(ctx context.Context) ([]models.Draw, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithFields(log.Fields{
				"path": r.path,
			}).Info("No existing dataset file, starting from an empty collection")
		} else {
			log.WithFields(log.Fields{
				"path":  r.path,
				"error": err,
			}).Warn("Failed to read dataset file, starting from an empty collection")
		}
		return nil, nil
	}

	var draws []models.Draw
	if err := json.Unmarshal(data, &draws); err != nil {
		log.WithFields(log.Fields{
			"path":  r.path,
			"error": err,
		}).Warn("Dataset file is corrupt, starting from an empty collection")
		return nil, nil
	}

	return draws, nil
}

// Save overwrites the dataset file with draws, pretty-printed. An empty
// collection is refused with ErrEmptyDataset. The write goes to a temp file
// first and is renamed into place so readers never see a partial file.
func (r *FileDrawRepository) Save(ctx context.Context, draws []models.Draw) error {
	if len(draws) == 0 {
		return ErrEmptyDataset
	}

	data, err := json.MarshalIndent(draws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create dataset directory %s: %w", dir, err)
		}
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace dataset: %w", err)
	}

	log.WithFields(log.Fields{
		"path":  r.path,
		"draws": len(draws),
	}).Info("Dataset persisted")

	return nil
}
