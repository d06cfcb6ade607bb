package repo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/db"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
)

func newTestDB(t *testing.T) *db.Db {
	t.Helper()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "database.db")

	conn, err := db.NewConnection(dbPath)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return conn
}

func TestUpdateRun_Integration(t *testing.T) {
	testCases := []struct {
		name string
		run  entity.Run
	}{
		{
			name: "insert",
			run: entity.Run{
				RunID:       "6f1b0ad1-59a9-4a34-98af-0e9a4a1a2b3c",
				Type:        "apply",
				Status:      "Queued",
				Environment: "dev",
				Err:         "",
			},
		},
		{
			name: "update",
			run: entity.Run{
				RunID:       "6f1b0ad1-59a9-4a34-98af-0e9a4a1a2b3c",
				Type:        "apply",
				Status:      "Successful",
				Environment: "dev",
				Err:         "",
			},
		},
	}

	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	ctx := context.Background()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := repo.UpdateRun(ctx, tc.run); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := repo.SelectRun(ctx, tc.run.RunID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.run.Status || got.Type != tc.run.Type || got.Environment != tc.run.Environment {
				t.Fatalf("expected %+v, got %+v", tc.run, got)
			}
		})
	}
}

func TestUpdateRunKeepsSnapshotPath_Integration(t *testing.T) {
	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	ctx := context.Background()

	run := entity.Run{
		RunID:        "5b3d2990-1f10-4f52-8f34-aaaaaaaaaaaa",
		Type:         "apply",
		Status:       "Processing",
		Environment:  "prod",
		SnapshotPath: "/backup-snapshots/5b3d2990",
	}
	if err := repo.UpdateRun(ctx, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run.Status = "Successful"
	run.SnapshotPath = ""
	if err := repo.UpdateRun(ctx, run); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.SelectRun(ctx, run.RunID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SnapshotPath != "/backup-snapshots/5b3d2990" {
		t.Fatalf("snapshot path lost on update, got %q", got.SnapshotPath)
	}
	if got.Status != "Successful" {
		t.Fatalf("expected status Successful, got %s", got.Status)
	}
}

func TestResources_Integration(t *testing.T) {
	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	ctx := context.Background()
	runID := "0d4b16fd-9df1-4e0c-9247-bbbbbbbbbbbb"

	resources := []entity.Resource{
		{RunID: runID, Tier: "high", Kind: "vault", Name: "backup-dev-high-vault", ARN: "arn:aws:backup:us-east-1:1:backup-vault:v"},
		{RunID: runID, Tier: "high", Kind: "plan", Name: "backup-dev-high-plan", ARN: "arn:aws:backup:us-east-1:1:backup-plan:p"},
		{RunID: runID, Tier: "high", Kind: "selection", Name: "backup-dev-high-selection", ARN: ""},
	}
	for _, r := range resources {
		if err := repo.AddResource(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Upsert with empty arn keeps the recorded one.
	if err := repo.AddResource(ctx, entity.Resource{RunID: runID, Tier: "high", Kind: "vault", Name: "backup-dev-high-vault"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.SelectResources(ctx, runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 resources, got %d", len(got))
	}
	for _, r := range got {
		if r.Kind == "vault" && r.ARN == "" {
			t.Fatal("vault arn lost on upsert")
		}
	}
}

func TestSelectRunNotFound_Integration(t *testing.T) {
	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	_, err := repo.SelectRun(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLatestRun_Integration(t *testing.T) {
	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	ctx := context.Background()

	runs := []entity.Run{
		{RunID: "9e107d9d-0000-4000-8000-000000000001", Type: "apply", Status: "Successful", Environment: "prod", CreatedAt: "2026-01-01 10:00:00"},
		{RunID: "9e107d9d-0000-4000-8000-000000000002", Type: "apply", Status: "Failed", Environment: "prod", CreatedAt: "2026-01-02 10:00:00"},
		{RunID: "9e107d9d-0000-4000-8000-000000000003", Type: "teardown", Status: "Successful", Environment: "prod", CreatedAt: "2026-01-03 10:00:00"},
	}
	for _, r := range runs {
		if err := repo.UpdateRun(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	latest, err := repo.LatestRun(ctx, "prod", "apply")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.RunID != "9e107d9d-0000-4000-8000-000000000002" {
		t.Fatalf("expected latest apply run, got %s", latest.RunID)
	}

	if _, err := repo.LatestRun(ctx, "dev", "apply"); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestRemoveRun_Integration(t *testing.T) {
	dbConn := newTestDB(t)
	defer func() {
		_ = dbConn.Close()
	}()

	repo := NewDBRepo(dbConn)
	ctx := context.Background()
	runID := "f47ac10b-58cc-4372-a567-0e02b2c3d479"

	if err := repo.UpdateRun(ctx, entity.Run{RunID: runID, Type: "apply", Status: "Successful", Environment: "dev"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.AddResource(ctx, entity.Resource{RunID: runID, Tier: "low", Kind: "vault", Name: "v"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.RemoveRun(ctx, runID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.SelectRun(ctx, runID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
	if err := repo.RemoveRun(ctx, runID); !errors.Is(err, ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}
