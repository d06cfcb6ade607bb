package repo

import (
	"encoding/json"
	"path/filepath"
	"testing"
)

const testRunID = "3e2f1a40-7c4b-4f8e-9a21-0123456789ab"

func TestSnapshotWriteAndRead(t *testing.T) {
	repo := NewSnapshotRepo(t.TempDir())

	payload := map[string]any{
		"run_id":      testRunID,
		"environment": "dev",
	}
	folder, err := repo.Write(testRunID, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(folder) != testRunID {
		t.Fatalf("unexpected snapshot folder %s", folder)
	}
	if !repo.Exists(testRunID) {
		t.Fatal("snapshot should exist after write")
	}

	data, err := repo.Read(testRunID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("snapshot is not valid json: %v", err)
	}
	if got["environment"] != "dev" {
		t.Fatalf("unexpected snapshot content: %v", got)
	}
}

func TestSnapshotList(t *testing.T) {
	repo := NewSnapshotRepo(t.TempDir())

	ids := []string{
		"b6f0c1de-0000-4000-8000-000000000002",
		"a5e9b0cd-0000-4000-8000-000000000001",
	}
	for _, id := range ids {
		if _, err := repo.Write(id, map[string]string{"run_id": id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	runs, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0] != ids[1] || runs[1] != ids[0] {
		t.Fatalf("expected sorted run ids, got %v", runs)
	}
}

func TestSnapshotListEmptyRoot(t *testing.T) {
	repo := NewSnapshotRepo(filepath.Join(t.TempDir(), "missing"))
	runs, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %v", runs)
	}
}

func TestSnapshotEvict(t *testing.T) {
	repo := NewSnapshotRepo(t.TempDir())

	if _, err := repo.Write(testRunID, map[string]string{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Evict(testRunID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Exists(testRunID) {
		t.Fatal("snapshot should be gone after evict")
	}

	if err := repo.Evict("../escape"); err == nil {
		t.Fatal("expected error for invalid run id")
	}
}
