package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// ExportToTOML writes the workout log and the checklist into a single TOML dump.
func ExportToTOML(records *RecordStore, checklist *Checklist, outputPath string) error {
	dump := models.DumpTOML{
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Checklist:  checklist.Items(),
	}
	for _, w := range records.All() {
		dump.Workouts = append(dump.Workouts, models.WorkoutTOML{
			ID:       w.ID,
			Category: w.Category,
			Exercise: w.Exercise,
			Reps:     w.Reps,
			Weight:   w.Weight,
			Date:     w.Date.UTC(),
		})
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}

// GetDumpPath returns ~/.config/liftlog/dump.toml.
func GetDumpPath() (string, error) {
	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dump.toml"), nil
}

// ReadDump decodes and validates a dump file without touching any store.
func ReadDump(filePath string) (*models.DumpTOML, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump models.DumpTOML
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}

	for i, w := range dump.Workouts {
		if strings.TrimSpace(w.Exercise) == "" || w.Reps <= 0 || w.Weight < 0 {
			return nil, fmt.Errorf("invalid workout #%d in dump (%q, %d reps, %.2f)", i+1, w.Exercise, w.Reps, w.Weight)
		}
	}
	return &dump, nil
}

// ImportFromTOML replaces the workout log and the checklist with the dump content.
// The dump is validated before anything is written.
func ImportFromTOML(ctx context.Context, records *RecordStore, checklist *Checklist, filePath string) (int, error) {
	dump, err := ReadDump(filePath)
	if err != nil {
		return 0, err
	}

	workouts := make([]models.Workout, 0, len(dump.Workouts))
	for _, w := range dump.Workouts {
		workouts = append(workouts, models.Workout{
			ID:       w.ID,
			Category: models.NormalizeCategory(w.Category),
			Exercise: strings.TrimSpace(w.Exercise),
			Reps:     w.Reps,
			Weight:   w.Weight,
			Date:     w.Date,
		})
	}

	if err := records.Replace(ctx, workouts); err != nil {
		return 0, err
	}
	if dump.Checklist != nil {
		if err := checklist.Replace(ctx, dump.Checklist); err != nil {
			return len(workouts), err
		}
	}
	return len(workouts), nil
}
