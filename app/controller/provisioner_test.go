package controller

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/db"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/policy"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/repo"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type provisionerFixture struct {
	backupClient *MockBackupClientRepository
	iamClient    *MockIAMClientRepository
	archive      *MockSnapshotArchiveRepository
	dbRepo       repo.DBRepository
	snapshotRepo repo.SnapshotRepository
	provisioner  ProvisionerUseCase
}

func newProvisionerFixture(t *testing.T, ctrl *gomock.Controller, environment string, s3Enable bool) *provisionerFixture {
	t.Helper()

	dir := t.TempDir()
	dbConnections, err := db.NewConnection(filepath.Join(dir, "database.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := dbConnections.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})

	f := &provisionerFixture{
		backupClient: NewMockBackupClientRepository(ctrl),
		iamClient:    NewMockIAMClientRepository(ctrl),
		archive:      NewMockSnapshotArchiveRepository(ctrl),
		dbRepo:       repo.NewDBRepo(dbConnections),
		snapshotRepo: repo.NewSnapshotRepo(filepath.Join(dir, "snapshots")),
	}
	f.provisioner = NewBackupProvisioner(policy.DefaultSet(), policy.NewNamer("backup", environment, ""),
		f.backupClient, f.iamClient, f.dbRepo, f.snapshotRepo, f.archive, s3Enable, "", zap.NewNop().Sugar())
	return f
}

func TestApplyEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	roleARN := "arn:aws:iam::111122223333:role/backup-dev-service-role"
	f.iamClient.EXPECT().EnsureBackupRole(gomock.Any(), "backup-dev-service-role").Return(roleARN, nil).Times(1)
	f.backupClient.EXPECT().EnsureVault(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, tags map[string]string) (string, error) {
			if _, ok := tags["backup_plan"]; !ok {
				t.Errorf("expected backup_plan tag on vault %s", name)
			}
			return "arn:" + name, nil
		}).Times(3)
	// dev is unprotected so any stale access policy gets cleared
	f.backupClient.EXPECT().DeleteVaultAccessPolicy(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.backupClient.EXPECT().EnsurePlan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, plan entity.BackupPlan) (string, string, error) {
			if len(plan.Rules) != 1 {
				t.Errorf("expected 1 rule on plan %s, got %d", plan.Name, len(plan.Rules))
			}
			if plan.Rules[0].ColdStorageAfterDays != nil {
				t.Errorf("expected no cold storage for dev, got %d", *plan.Rules[0].ColdStorageAfterDays)
			}
			return "id-" + plan.Name, "arn:" + plan.Name, nil
		}).Times(3)
	f.backupClient.EXPECT().EnsureSelection(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, planID string, selection entity.BackupSelection) (string, error) {
			if selection.RoleARN != roleARN {
				t.Errorf("expected selection role %s, got %s", roleARN, selection.RoleARN)
			}
			return "sel-" + selection.Name, nil
		}).Times(3)

	response, err := f.provisioner.ApplyEnvironment(context.Background(), entity.ApplyRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.RunID == "" {
		t.Fatal("expected a run id")
	}

	status, err := f.provisioner.GetRunStatus(context.Background(), entity.RunStatusRequest{RunID: response.RunID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "Successful" {
		t.Fatalf("expected run Successful, got %s (err: %s)", status.Status, status.Error)
	}
	// role + 3 tiers x (vault, plan, selection)
	if len(status.Resources) != 10 {
		t.Fatalf("expected 10 recorded resources, got %d", len(status.Resources))
	}
	if !f.snapshotRepo.Exists(response.RunID) {
		t.Fatal("expected run snapshot on disk")
	}
}

func TestApplyEnvironmentDryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	response, err := f.provisioner.ApplyEnvironment(context.Background(), entity.ApplyRequest{DryRun: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := f.provisioner.GetRunStatus(context.Background(), entity.RunStatusRequest{RunID: response.RunID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "Successful" {
		t.Fatalf("expected run Successful, got %s", status.Status)
	}
	if len(status.Resources) != 0 {
		t.Fatalf("expected no resources on dry run, got %d", len(status.Resources))
	}
	if !f.snapshotRepo.Exists(response.RunID) {
		t.Fatal("expected run snapshot on disk")
	}
}

func TestApplyProtectedEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "platform", false)

	f.iamClient.EXPECT().EnsureBackupRole(gomock.Any(), gomock.Any()).Return("arn:role", nil).Times(1)
	f.backupClient.EXPECT().EnsureVault(gomock.Any(), gomock.Any(), gomock.Any()).Return("arn:vault", nil).Times(3)
	f.backupClient.EXPECT().PutVaultAccessPolicy(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, name string, policyDocument string) error {
			if policyDocument == "" {
				t.Errorf("expected a non-empty access policy for vault %s", name)
			}
			return nil
		}).Times(3)
	f.backupClient.EXPECT().EnsurePlan(gomock.Any(), gomock.Any()).Return("plan-id", "arn:plan", nil).Times(3)
	f.backupClient.EXPECT().EnsureSelection(gomock.Any(), gomock.Any(), gomock.Any()).Return("sel-id", nil).Times(3)

	if _, err := f.provisioner.ApplyEnvironment(context.Background(), entity.ApplyRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyEnvironmentFailureMarksRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	f.iamClient.EXPECT().EnsureBackupRole(gomock.Any(), gomock.Any()).Return("", errors.New("iam down")).Times(1)

	response, err := f.provisioner.ApplyEnvironment(context.Background(), entity.ApplyRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if response.RunID != "" {
		t.Fatalf("expected empty run id on failure, got %s", response.RunID)
	}

	run, err := f.dbRepo.LatestRun(context.Background(), "dev", APPLY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Status != "Failed" {
		t.Fatalf("expected run Failed, got %s", run.Status)
	}
	if run.Err == "" {
		t.Fatal("expected failure cause on run")
	}
}

func TestTeardownEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	f.backupClient.EXPECT().FindPlanID(gomock.Any(), gomock.Any()).Return("plan-id", nil).Times(3)
	f.backupClient.EXPECT().ListSelections(gomock.Any(), "plan-id").
		Return(map[string]string{"selection": "sel-id"}, nil).Times(3)
	f.backupClient.EXPECT().DeleteSelection(gomock.Any(), "plan-id", "sel-id").Return(nil).Times(3)
	f.backupClient.EXPECT().DeletePlan(gomock.Any(), "plan-id").Return(nil).Times(3)
	f.backupClient.EXPECT().DeleteVaultAccessPolicy(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.backupClient.EXPECT().DeleteVault(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	response, err := f.provisioner.TeardownEnvironment(context.Background(), entity.TeardownRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := f.provisioner.GetRunStatus(context.Background(), entity.RunStatusRequest{RunID: response.RunID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "Successful" {
		t.Fatalf("expected run Successful, got %s (err: %s)", status.Status, status.Error)
	}
}

func TestTeardownKeepsProtectedVaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "platform", false)

	f.backupClient.EXPECT().FindPlanID(gomock.Any(), gomock.Any()).Return("plan-id", nil).Times(3)
	f.backupClient.EXPECT().ListSelections(gomock.Any(), "plan-id").Return(map[string]string{}, nil).Times(3)
	f.backupClient.EXPECT().DeletePlan(gomock.Any(), "plan-id").Return(nil).Times(3)
	// no DeleteVault expectations: a protected environment keeps its vaults

	if _, err := f.provisioner.TeardownEnvironment(context.Background(), entity.TeardownRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetRunStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	status, err := f.provisioner.GetRunStatus(context.Background(), entity.RunStatusRequest{RunID: "missing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status code %d, got %d", http.StatusNotFound, status.StatusCode)
	}
}

func TestResolveTierDefaultsEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "gcc-prod", false)

	resolved, err := f.provisioner.ResolveTier(context.Background(), entity.ResolveRequest{Tier: "high"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Environment != "gcc-prod" {
		t.Fatalf("expected environment gcc-prod, got %s", resolved.Environment)
	}
	if resolved.ColdStorageAfterDays == nil || *resolved.ColdStorageAfterDays != 120 {
		t.Fatalf("expected cold storage after 120 days, got %v", resolved.ColdStorageAfterDays)
	}

	if _, err := f.provisioner.ResolveTier(context.Background(), entity.ResolveRequest{Tier: "extreme"}); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestCreateSnapshotPresignedURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", true)

	runID := "52b0a9e0-6b89-48f1-a1a3-0f2a90afcd41"
	if _, err := f.snapshotRepo.Write(runID, map[string]string{"run_id": runID}); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}

	f.archive.EXPECT().ListRunFiles(gomock.Any(), runID).
		Return([]string{"snapshots/" + runID + "/run.json", "snapshots/" + runID + "/console.log"}, nil).Times(1)
	f.archive.EXPECT().CreatePresignedUrl(gomock.Any(), "snapshots/"+runID+"/run.json", 600).Return("url1", nil).Times(1)

	response, err := f.provisioner.CreateSnapshotPresignedURL(context.Background(), entity.SnapshotURLRequest{
		RunID:      runID,
		Expiration: 600,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Urls) != 1 || response.Urls[0] != "url1" {
		t.Fatalf("expected [url1], got %v", response.Urls)
	}
}

func TestRemoveRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", true)

	runID := "8c1f4a8e-27c8-4a6a-9f70-4be00bb1a3dd"
	run := entity.Run{RunID: runID, Type: APPLY, Status: "Successful", Environment: "dev"}
	if err := f.dbRepo.UpdateRun(context.Background(), run); err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	if _, err := f.snapshotRepo.Write(runID, map[string]string{"run_id": runID}); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
	f.archive.EXPECT().DeleteRun(gomock.Any(), runID).Return(nil).Times(1)

	response, err := f.provisioner.RemoveRun(context.Background(), entity.RemoveRunRequest{RunID: runID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status code %d, got %d", http.StatusOK, response.StatusCode)
	}
	if f.snapshotRepo.Exists(runID) {
		t.Fatal("expected snapshot to be evicted")
	}
	if _, err := f.dbRepo.SelectRun(context.Background(), runID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("expected run to be removed, got %v", err)
	}

	response, err = f.provisioner.RemoveRun(context.Background(), entity.RemoveRunRequest{RunID: runID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status code %d, got %d", http.StatusNotFound, response.StatusCode)
	}
}

func TestRemoveRunRefusesInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", true)

	runID := "0d8c9a44-fd12-4f97-9c3f-7d4f3c1de0aa"
	run := entity.Run{RunID: runID, Type: APPLY, Status: "Processing", Environment: "dev"}
	if err := f.dbRepo.UpdateRun(context.Background(), run); err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	// no archive expectation: an in-flight run is left alone

	response, err := f.provisioner.RemoveRun(context.Background(), entity.RemoveRunRequest{RunID: runID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected status code %d, got %d", http.StatusConflict, response.StatusCode)
	}
	if _, err := f.dbRepo.SelectRun(context.Background(), runID); err != nil {
		t.Fatalf("expected run to remain recorded, got %v", err)
	}
}

func TestGetLatestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	runs := []entity.Run{
		{RunID: "f2f1a6a0-59a5-4c7e-86cc-0a18a17c2f01", Type: APPLY, Status: "Failed", Environment: "dev", CreatedAt: "2026-08-27 00:00:00"},
		{RunID: "f2f1a6a0-59a5-4c7e-86cc-0a18a17c2f02", Type: APPLY, Status: "Successful", Environment: "dev", CreatedAt: "2026-08-28 00:00:00"},
		{RunID: "f2f1a6a0-59a5-4c7e-86cc-0a18a17c2f03", Type: TEARDOWN, Status: "Successful", Environment: "dev", CreatedAt: "2026-08-28 01:00:00"},
	}
	for _, run := range runs {
		if err := f.dbRepo.UpdateRun(context.Background(), run); err != nil {
			t.Fatalf("failed to record run: %v", err)
		}
	}

	status, err := f.provisioner.GetLatestRun(context.Background(), entity.LatestRunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.RunID != runs[1].RunID {
		t.Fatalf("expected latest apply run %s, got %s", runs[1].RunID, status.RunID)
	}

	status, err = f.provisioner.GetLatestRun(context.Background(), entity.LatestRunRequest{Type: TEARDOWN})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.RunID != runs[2].RunID {
		t.Fatalf("expected latest teardown run %s, got %s", runs[2].RunID, status.RunID)
	}

	g := newProvisionerFixture(t, ctrl, "empty", false)
	status, err = g.provisioner.GetLatestRun(context.Background(), entity.LatestRunRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status code %d, got %d", http.StatusNotFound, status.StatusCode)
	}
}

func TestListRunsAndSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)

	runIDs := []string{
		"1b9de2aa-5f2e-4a3d-92f1-6f2bb11a0c01",
		"1b9de2aa-5f2e-4a3d-92f1-6f2bb11a0c02",
	}
	for _, runID := range runIDs {
		if _, err := f.snapshotRepo.Write(runID, map[string]string{"run_id": runID}); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
	}

	list, err := f.provisioner.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.RunIDs) != 2 || list.RunIDs[0] != runIDs[0] || list.RunIDs[1] != runIDs[1] {
		t.Fatalf("expected %v, got %v", runIDs, list.RunIDs)
	}

	snapshot, err := f.provisioner.GetRunSnapshot(context.Background(), entity.SnapshotRequest{RunID: runIDs[0]})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(snapshot.Document), runIDs[0]) {
		t.Fatalf("expected snapshot document to carry run id, got %s", snapshot.Document)
	}

	snapshot, err = f.provisioner.GetRunSnapshot(context.Background(), entity.SnapshotRequest{RunID: "1b9de2aa-5f2e-4a3d-92f1-6f2bb11a0c99"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status code %d, got %d", http.StatusNotFound, snapshot.StatusCode)
	}
}

func TestGetProtectionKeepsConfiguredNaming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "dev", false)
	provisioner := NewBackupProvisioner(policy.DefaultSet(), policy.NewNamer("acme", "dev", "blue"),
		f.backupClient, f.iamClient, f.dbRepo, f.snapshotRepo, f.archive, false, "", zap.NewNop().Sugar())

	response, err := provisioner.GetProtection(context.Background(), entity.ProtectionRequest{Environment: "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Vaults[0].Vault != "acme-staging-high-vault-blue" {
		t.Fatalf("expected vault acme-staging-high-vault-blue, got %s", response.Vaults[0].Vault)
	}
}

func TestDescribePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newProvisionerFixture(t, ctrl, "prod", false)

	description, err := f.provisioner.DescribePolicy(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if description.Environment != "prod" {
		t.Fatalf("expected environment prod, got %s", description.Environment)
	}
	if description.Protected {
		t.Fatal("prod is not a protected environment")
	}
	if description.TagKey != "backup_plan" {
		t.Fatalf("expected tag key backup_plan, got %s", description.TagKey)
	}
	if len(description.Tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(description.Tiers))
	}

	protection, err := f.provisioner.GetProtection(context.Background(), entity.ProtectionRequest{Environment: "staging"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !protection.Protected {
		t.Fatal("staging is a protected environment")
	}
	if len(protection.Vaults) != 3 {
		t.Fatalf("expected 3 vaults, got %d", len(protection.Vaults))
	}
}
