package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/policy"
	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const APPLY = "apply"
const TEARDOWN = "teardown"

const KindVault = "vault"
const KindPlan = "plan"
const KindSelection = "selection"
const KindRole = "role"

//go:generate mockgen -source=provisioner.go -destination=../rest/mock.go -package=rest
type ProvisionerUseCase interface {
	ApplyEnvironment(ctx context.Context, request entity.ApplyRequest) (entity.ApplyResponse, error)
	TeardownEnvironment(ctx context.Context, request entity.TeardownRequest) (entity.TeardownResponse, error)
	ResolveTier(ctx context.Context, request entity.ResolveRequest) (entity.ResolvedPolicy, error)
	GetRunStatus(ctx context.Context, request entity.RunStatusRequest) (entity.RunStatusResponse, error)
	GetLatestRun(ctx context.Context, request entity.LatestRunRequest) (entity.RunStatusResponse, error)
	GetRunSnapshot(ctx context.Context, request entity.SnapshotRequest) (entity.SnapshotResponse, error)
	ListRuns(ctx context.Context) (entity.RunListResponse, error)
	RemoveRun(ctx context.Context, request entity.RemoveRunRequest) (entity.RemoveRunResponse, error)
	GetProtection(ctx context.Context, request entity.ProtectionRequest) (entity.ProtectionResponse, error)
	DescribePolicy(ctx context.Context) (entity.PolicyDescription, error)
	CreateSnapshotPresignedURL(ctx context.Context, request entity.SnapshotURLRequest) (entity.SnapshotURLResponse, error)
}

type BackupProvisioner struct {
	policies     *policy.Set
	namer        policy.Namer
	backupClient BackupClientRepository
	iamClient    IAMClientRepository
	dbRepo       repo.DBRepository
	snapshotRepo repo.SnapshotRepository
	archive      SnapshotArchiveRepository
	s3Enable     bool
	// roleARN, when set, is an externally managed service role and IAM
	// management is skipped entirely.
	roleARN string
	logger  *zap.SugaredLogger
}

func NewBackupProvisioner(policies *policy.Set, namer policy.Namer,
	backupClient BackupClientRepository, iamClient IAMClientRepository,
	dbRepo repo.DBRepository, snapshotRepo repo.SnapshotRepository,
	archive SnapshotArchiveRepository, s3Enable bool, roleARN string, logger *zap.SugaredLogger) ProvisionerUseCase {
	return &BackupProvisioner{
		policies:     policies,
		namer:        namer,
		backupClient: backupClient,
		iamClient:    iamClient,
		dbRepo:       dbRepo,
		snapshotRepo: snapshotRepo,
		archive:      archive,
		s3Enable:     s3Enable,
		roleARN:      roleARN,
		logger:       logger,
	}
}

// tierSnapshot is the per-tier section of the run snapshot document.
type tierSnapshot struct {
	Policy    entity.ResolvedPolicy `json:"policy"`
	Vault     string                `json:"vault"`
	Plan      string                `json:"plan"`
	Selection string                `json:"selection"`
	TagKey    string                `json:"tag_key"`
	TagValue  string                `json:"tag_value"`
}

type runSnapshot struct {
	RunID       string            `json:"run_id"`
	Type        string            `json:"type"`
	Environment string            `json:"environment"`
	Protected   bool              `json:"protected"`
	Role        string            `json:"role"`
	Tiers       []tierSnapshot    `json:"tiers"`
	Resources   []entity.Resource `json:"resources,omitempty"`
}

// ApplyEnvironment resolves the policy for every tier and converges the
// control plane on it: the service role, then per tier the vault, its access
// policy, the plan and the tag selection. Re-applying an already provisioned
// environment is a no-op apart from plan rule updates.
func (p *BackupProvisioner) ApplyEnvironment(ctx context.Context, request entity.ApplyRequest) (entity.ApplyResponse, error) {
	runID := uuid.New().String()
	environment := p.namer.Environment()
	run := entity.Run{RunID: runID, Type: APPLY, Status: "Queued", Environment: environment}

	if err := p.dbRepo.UpdateRun(ctx, run); err != nil {
		return entity.ApplyResponse{}, fmt.Errorf("failed to update run err: %w", err)
	}

	// Resolve everything up front so a bad policy never leaves a half
	// provisioned environment behind.
	snapshot := runSnapshot{
		RunID:       runID,
		Type:        APPLY,
		Environment: environment,
		Protected:   p.policies.Protect(environment),
	}
	for _, tier := range entity.Tiers() {
		resolved, err := p.policies.Resolve(tier, environment)
		if err != nil {
			return entity.ApplyResponse{}, p.failRun(ctx, run, err)
		}
		tagKey, tagValue, err := p.policies.SelectionTag(tier)
		if err != nil {
			return entity.ApplyResponse{}, p.failRun(ctx, run, err)
		}
		snapshot.Tiers = append(snapshot.Tiers, tierSnapshot{
			Policy:    resolved,
			Vault:     p.namer.VaultName(tier),
			Plan:      p.namer.PlanName(tier),
			Selection: p.namer.SelectionName(tier),
			TagKey:    tagKey,
			TagValue:  tagValue,
		})
	}
	snapshot.Role = p.namer.RoleName()

	if request.DryRun {
		if err := p.finishRun(ctx, run, snapshot); err != nil {
			return entity.ApplyResponse{}, err
		}
		return entity.ApplyResponse{RunID: runID}, nil
	}

	run.Status = "Processing"
	if err := p.dbRepo.UpdateRun(ctx, run); err != nil {
		return entity.ApplyResponse{}, fmt.Errorf("failed to update run err: %w", err)
	}

	roleARN := p.roleARN
	if roleARN == "" {
		var err error
		roleARN, err = p.iamClient.EnsureBackupRole(ctx, snapshot.Role)
		if err != nil {
			return entity.ApplyResponse{}, p.failRun(ctx, run, err)
		}
		if err := p.recordResource(ctx, runID, "", KindRole, snapshot.Role, roleARN); err != nil {
			return entity.ApplyResponse{}, p.failRun(ctx, run, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, ts := range snapshot.Tiers {
		ts := ts
		g.Go(func() error {
			return p.applyTier(gctx, runID, ts, roleARN, snapshot.Protected)
		})
	}
	if err := g.Wait(); err != nil {
		return entity.ApplyResponse{}, p.failRun(ctx, run, err)
	}

	resources, err := p.dbRepo.SelectResources(ctx, runID)
	if err != nil {
		return entity.ApplyResponse{}, p.failRun(ctx, run, err)
	}
	snapshot.Resources = resources

	if err := p.finishRun(ctx, run, snapshot); err != nil {
		return entity.ApplyResponse{}, err
	}
	return entity.ApplyResponse{RunID: runID}, nil
}

func (p *BackupProvisioner) applyTier(ctx context.Context, runID string, ts tierSnapshot, roleARN string, protected bool) error {
	tier := ts.Policy.Tier

	vaultARN, err := p.backupClient.EnsureVault(ctx, ts.Vault, map[string]string{ts.TagKey: ts.TagValue})
	if err != nil {
		return err
	}
	if err := p.recordResource(ctx, runID, string(tier), KindVault, ts.Vault, vaultARN); err != nil {
		return err
	}

	if protected {
		document, err := policy.VaultAccessPolicy()
		if err != nil {
			return err
		}
		if err := p.backupClient.PutVaultAccessPolicy(ctx, ts.Vault, document); err != nil {
			return err
		}
	} else {
		if err := p.backupClient.DeleteVaultAccessPolicy(ctx, ts.Vault); err != nil {
			return err
		}
	}

	planID, planARN, err := p.backupClient.EnsurePlan(ctx, entity.BackupPlan{
		Name: ts.Plan,
		Rules: []entity.PlanRule{
			{
				RuleName:             p.namer.RuleName(tier),
				TargetVaultName:      ts.Vault,
				Schedule:             ts.Policy.Schedule,
				DeleteAfterDays:      ts.Policy.DeleteAfterDays,
				ColdStorageAfterDays: ts.Policy.ColdStorageAfterDays,
			},
		},
		Tags: map[string]string{ts.TagKey: ts.TagValue},
	})
	if err != nil {
		return err
	}
	if err := p.recordResource(ctx, runID, string(tier), KindPlan, ts.Plan, planARN); err != nil {
		return err
	}

	selectionID, err := p.backupClient.EnsureSelection(ctx, planID, entity.BackupSelection{
		Name:     ts.Selection,
		RoleARN:  roleARN,
		TagKey:   ts.TagKey,
		TagValue: ts.TagValue,
	})
	if err != nil {
		return err
	}
	return p.recordResource(ctx, runID, string(tier), KindSelection, ts.Selection, selectionID)
}

// TeardownEnvironment removes selections and plans for every tier. Vaults are
// removed only when the environment is unprotected and the request does not
// ask to keep them; a vault with recovery points is left for the control
// plane to refuse anyway.
func (p *BackupProvisioner) TeardownEnvironment(ctx context.Context, request entity.TeardownRequest) (entity.TeardownResponse, error) {
	runID := uuid.New().String()
	environment := p.namer.Environment()
	run := entity.Run{RunID: runID, Type: TEARDOWN, Status: "Processing", Environment: environment}

	if err := p.dbRepo.UpdateRun(ctx, run); err != nil {
		return entity.TeardownResponse{}, fmt.Errorf("failed to update run err: %w", err)
	}

	keepVaults := request.KeepVaults || p.policies.Protect(environment)

	for _, tier := range entity.Tiers() {
		planName := p.namer.PlanName(tier)
		planID, err := p.backupClient.FindPlanID(ctx, planName)
		if err != nil {
			return entity.TeardownResponse{}, p.failRun(ctx, run, err)
		}
		if planID != "" {
			selections, err := p.backupClient.ListSelections(ctx, planID)
			if err != nil {
				return entity.TeardownResponse{}, p.failRun(ctx, run, err)
			}
			for name, selectionID := range selections {
				if err := p.backupClient.DeleteSelection(ctx, planID, selectionID); err != nil {
					return entity.TeardownResponse{}, p.failRun(ctx, run, err)
				}
				if err := p.recordResource(ctx, runID, string(tier), KindSelection, name, selectionID); err != nil {
					return entity.TeardownResponse{}, p.failRun(ctx, run, err)
				}
			}
			if err := p.backupClient.DeletePlan(ctx, planID); err != nil {
				return entity.TeardownResponse{}, p.failRun(ctx, run, err)
			}
			if err := p.recordResource(ctx, runID, string(tier), KindPlan, planName, planID); err != nil {
				return entity.TeardownResponse{}, p.failRun(ctx, run, err)
			}
		}

		if keepVaults {
			continue
		}
		vaultName := p.namer.VaultName(tier)
		if err := p.backupClient.DeleteVaultAccessPolicy(ctx, vaultName); err != nil {
			return entity.TeardownResponse{}, p.failRun(ctx, run, err)
		}
		if err := p.backupClient.DeleteVault(ctx, vaultName); err != nil {
			return entity.TeardownResponse{}, p.failRun(ctx, run, err)
		}
		if err := p.recordResource(ctx, runID, string(tier), KindVault, vaultName, ""); err != nil {
			return entity.TeardownResponse{}, p.failRun(ctx, run, err)
		}
	}

	resources, err := p.dbRepo.SelectResources(ctx, runID)
	if err != nil {
		return entity.TeardownResponse{}, p.failRun(ctx, run, err)
	}
	snapshot := runSnapshot{
		RunID:       runID,
		Type:        TEARDOWN,
		Environment: environment,
		Protected:   p.policies.Protect(environment),
		Resources:   resources,
	}
	if err := p.finishRun(ctx, run, snapshot); err != nil {
		return entity.TeardownResponse{}, err
	}
	return entity.TeardownResponse{RunID: runID}, nil
}

func (p *BackupProvisioner) ResolveTier(ctx context.Context, request entity.ResolveRequest) (entity.ResolvedPolicy, error) {
	tier, err := entity.ParseTier(request.Tier)
	if err != nil {
		return entity.ResolvedPolicy{}, err
	}
	environment := request.Environment
	if environment == "" {
		environment = p.namer.Environment()
	}
	return p.policies.Resolve(tier, environment)
}

func (p *BackupProvisioner) GetRunStatus(ctx context.Context, request entity.RunStatusRequest) (entity.RunStatusResponse, error) {
	run, err := p.dbRepo.SelectRun(ctx, request.RunID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.RunStatusResponse{
				StatusCode: http.StatusNotFound,
			}, nil
		}
		return entity.RunStatusResponse{}, fmt.Errorf("failed to select run err: %w", err)
	}
	resources, err := p.dbRepo.SelectResources(ctx, request.RunID)
	if err != nil {
		return entity.RunStatusResponse{}, fmt.Errorf("failed to select resources err: %w", err)
	}
	response := entity.RunStatusResponse{
		RunID:       run.RunID,
		Type:        run.Type,
		Status:      run.Status,
		Environment: run.Environment,
		Error:       run.Err,
		Resources:   resources,
	}
	if run.Status == "Successful" {
		response.StatusCode = http.StatusOK
	} else if run.Status == "Failed" {
		response.StatusCode = http.StatusInternalServerError
	} else {
		response.StatusCode = http.StatusPartialContent
	}
	return response, nil
}

// GetLatestRun reports the most recent run of the given type for the
// configured environment.
func (p *BackupProvisioner) GetLatestRun(ctx context.Context, request entity.LatestRunRequest) (entity.RunStatusResponse, error) {
	runType := request.Type
	if runType == "" {
		runType = APPLY
	}
	run, err := p.dbRepo.LatestRun(ctx, p.namer.Environment(), runType)
	if err != nil {
		if errors.Is(err, repo.ErrNoRuns) {
			return entity.RunStatusResponse{StatusCode: http.StatusNotFound}, nil
		}
		return entity.RunStatusResponse{}, fmt.Errorf("failed to select latest run err: %w", err)
	}
	return p.GetRunStatus(ctx, entity.RunStatusRequest{RunID: run.RunID})
}

func (p *BackupProvisioner) GetRunSnapshot(ctx context.Context, request entity.SnapshotRequest) (entity.SnapshotResponse, error) {
	if !p.snapshotRepo.Exists(request.RunID) {
		return entity.SnapshotResponse{StatusCode: http.StatusNotFound}, nil
	}
	document, err := p.snapshotRepo.Read(request.RunID)
	if err != nil {
		return entity.SnapshotResponse{}, fmt.Errorf("failed to read snapshot err: %w", err)
	}
	return entity.SnapshotResponse{Document: document, StatusCode: http.StatusOK}, nil
}

func (p *BackupProvisioner) ListRuns(ctx context.Context) (entity.RunListResponse, error) {
	runIDs, err := p.snapshotRepo.List()
	if err != nil {
		return entity.RunListResponse{}, fmt.Errorf("failed to list snapshots err: %w", err)
	}
	return entity.RunListResponse{RunIDs: runIDs}, nil
}

// RemoveRun deletes a finished run: its database rows, its local snapshot and,
// when archiving is enabled, its S3 objects. Runs still in flight are refused.
func (p *BackupProvisioner) RemoveRun(ctx context.Context, request entity.RemoveRunRequest) (entity.RemoveRunResponse, error) {
	run, err := p.dbRepo.SelectRun(ctx, request.RunID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.RemoveRunResponse{StatusCode: http.StatusNotFound}, nil
		}
		return entity.RemoveRunResponse{}, fmt.Errorf("failed to select run err: %w", err)
	}
	if run.Status == "Queued" || run.Status == "Processing" {
		return entity.RemoveRunResponse{RunID: run.RunID, StatusCode: http.StatusConflict}, nil
	}
	if p.snapshotRepo.Exists(run.RunID) {
		if err := p.snapshotRepo.Evict(run.RunID); err != nil {
			return entity.RemoveRunResponse{}, fmt.Errorf("failed to evict snapshot err: %w", err)
		}
	}
	if p.s3Enable {
		if err := p.archive.DeleteRun(ctx, run.RunID); err != nil {
			return entity.RemoveRunResponse{}, fmt.Errorf("failed to delete snapshot from s3 err: %w", err)
		}
	}
	if err := p.dbRepo.RemoveRun(ctx, run.RunID); err != nil {
		return entity.RemoveRunResponse{}, fmt.Errorf("failed to remove run err: %w", err)
	}
	return entity.RemoveRunResponse{RunID: run.RunID, StatusCode: http.StatusOK}, nil
}

func (p *BackupProvisioner) GetProtection(ctx context.Context, request entity.ProtectionRequest) (entity.ProtectionResponse, error) {
	environment := request.Environment
	if environment == "" {
		environment = p.namer.Environment()
	}
	protected := p.policies.Protect(environment)

	namer := p.namer.ForEnvironment(environment)
	response := entity.ProtectionResponse{
		Environment: environment,
		Protected:   protected,
	}
	for _, tier := range entity.Tiers() {
		response.Vaults = append(response.Vaults, entity.VaultProtection{
			Tier:      tier,
			Vault:     namer.VaultName(tier),
			Protected: protected,
		})
	}
	return response, nil
}

func (p *BackupProvisioner) DescribePolicy(ctx context.Context) (entity.PolicyDescription, error) {
	environment := p.namer.Environment()
	description := entity.PolicyDescription{
		Environment: environment,
		Protected:   p.policies.Protect(environment),
		TagKey:      p.policies.TagKey(),
	}
	for _, tier := range entity.Tiers() {
		resolved, err := p.policies.Resolve(tier, environment)
		if err != nil {
			return entity.PolicyDescription{}, fmt.Errorf("failed to resolve tier %s err: %w", tier, err)
		}
		_, tagValue, err := p.policies.SelectionTag(tier)
		if err != nil {
			return entity.PolicyDescription{}, fmt.Errorf("failed to get selection tag for tier %s err: %w", tier, err)
		}
		description.Tiers = append(description.Tiers, entity.TierPolicyInfo{
			ResolvedPolicy: resolved,
			TagValue:       tagValue,
		})
	}
	return description, nil
}

func (p *BackupProvisioner) CreateSnapshotPresignedURL(ctx context.Context, request entity.SnapshotURLRequest) (entity.SnapshotURLResponse, error) {
	if !p.s3Enable {
		return entity.SnapshotURLResponse{}, fmt.Errorf("snapshot archive is not enabled")
	}
	if !p.snapshotRepo.Exists(request.RunID) {
		return entity.SnapshotURLResponse{}, fmt.Errorf("run %s not found in snapshot storage", request.RunID)
	}
	files, err := p.archive.ListRunFiles(ctx, request.RunID)
	if err != nil {
		return entity.SnapshotURLResponse{}, fmt.Errorf("failed to list files from s3 err: %w", err)
	}
	var urls []string
	for _, file := range files {
		if !strings.HasSuffix(file, ".json") {
			continue
		}
		url, err := p.archive.CreatePresignedUrl(ctx, file, request.Expiration)
		if err != nil {
			return entity.SnapshotURLResponse{}, fmt.Errorf("failed to create presigned url err: %w", err)
		}
		urls = append(urls, url)
	}
	return entity.SnapshotURLResponse{Urls: urls}, nil
}

func (p *BackupProvisioner) recordResource(ctx context.Context, runID string, tier string, kind string, name string, arn string) error {
	err := p.dbRepo.AddResource(ctx, entity.Resource{
		RunID: runID,
		Tier:  tier,
		Kind:  kind,
		Name:  name,
		ARN:   arn,
	})
	if err != nil {
		return fmt.Errorf("failed to record %s %s err: %w", kind, name, err)
	}
	return nil
}

// finishRun writes the snapshot, archives it when s3 is enabled and marks the
// run successful.
func (p *BackupProvisioner) finishRun(ctx context.Context, run entity.Run, snapshot runSnapshot) error {
	folder, err := p.snapshotRepo.Write(run.RunID, snapshot)
	if err != nil {
		return p.failRun(ctx, run, err)
	}
	run.SnapshotPath = folder

	if p.s3Enable {
		if err := p.archive.UploadRun(ctx, folder, run.RunID); err != nil {
			return p.failRun(ctx, run, fmt.Errorf("failed to upload snapshot to s3 err: %w", err))
		}
	}

	run.Status = "Successful"
	if err := p.dbRepo.UpdateRun(ctx, run); err != nil {
		return fmt.Errorf("failed to update run err: %w", err)
	}
	return nil
}

func (p *BackupProvisioner) failRun(ctx context.Context, run entity.Run, cause error) error {
	run.Status = "Failed"
	run.Err = cause.Error()
	if err := p.dbRepo.UpdateRun(ctx, run); err != nil {
		p.logger.Errorf("failed to record failure of run %s err: %v", run.RunID, err)
	}
	return cause
}
