package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

const SnapshotFileName = "run.json"

type SnapshotRepository interface {
	Write(runID string, payload any) (string, error)
	Read(runID string) ([]byte, error)
	List() ([]string, error)
	Evict(runID string) error
	Exists(runID string) bool
	Folder(runID string) string
}

type SnapshotRepo struct {
	root              string
	runDirnameMatcher *regexp.Regexp
}

func NewSnapshotRepo(root string) SnapshotRepository {
	return &SnapshotRepo{
		root:              root,
		runDirnameMatcher: regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
	}
}

// Write renders the run payload to <root>/<runID>/run.json and returns the
// snapshot folder.
func (s *SnapshotRepo) Write(runID string, payload any) (string, error) {
	folder := s.Folder(runID)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir %s: %w", folder, err)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot for run %s: %w", runID, err)
	}
	target := filepath.Join(folder, SnapshotFileName)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", target, err)
	}
	return folder, nil
}

func (s *SnapshotRepo) Read(runID string) ([]byte, error) {
	target := filepath.Join(s.Folder(runID), SnapshotFileName)
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", target, err)
	}
	return data, nil
}

func (s *SnapshotRepo) List() ([]string, error) {
	if !s.exists(s.root) {
		return []string{}, nil
	}
	files, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read dir %s: %v", s.root, err)
	}
	var runs []string
	for _, file := range files {
		if file.IsDir() && s.runDirnameMatcher.MatchString(file.Name()) {
			runs = append(runs, file.Name())
		}
	}
	sort.Strings(runs)
	return runs, nil
}

func (s *SnapshotRepo) Evict(runID string) error {
	if !s.runDirnameMatcher.MatchString(runID) {
		return fmt.Errorf("invalid run id %q", runID)
	}
	return s.removeTree(s.Folder(runID))
}

func (s *SnapshotRepo) Exists(runID string) bool {
	return s.exists(filepath.Join(s.Folder(runID), SnapshotFileName))
}

func (s *SnapshotRepo) Folder(runID string) string {
	return filepath.Join(s.root, runID)
}

func (s *SnapshotRepo) exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func (s *SnapshotRepo) removeTree(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %v", path, err)
	}
	return nil
}
