package controller

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	"github.com/aws/aws-sdk-go-v2/service/backup/types"
	"github.com/aws/smithy-go"
)

type BackupClientRepository interface {
	EnsureVault(ctx context.Context, name string, tags map[string]string) (string, error)
	DeleteVault(ctx context.Context, name string) error
	PutVaultAccessPolicy(ctx context.Context, name string, policyDocument string) error
	DeleteVaultAccessPolicy(ctx context.Context, name string) error
	EnsurePlan(ctx context.Context, plan entity.BackupPlan) (string, string, error)
	DeletePlan(ctx context.Context, planID string) error
	FindPlanID(ctx context.Context, name string) (string, error)
	EnsureSelection(ctx context.Context, planID string, selection entity.BackupSelection) (string, error)
	ListSelections(ctx context.Context, planID string) (map[string]string, error)
	DeleteSelection(ctx context.Context, planID string, selectionID string) error
}

//go:generate mockgen -source=backupclient.go -destination=backupmock.go -package=controller
type BackupAPIInterface interface {
	CreateBackupVault(ctx context.Context, params *backup.CreateBackupVaultInput, optFns ...func(*backup.Options)) (*backup.CreateBackupVaultOutput, error)
	DescribeBackupVault(ctx context.Context, params *backup.DescribeBackupVaultInput, optFns ...func(*backup.Options)) (*backup.DescribeBackupVaultOutput, error)
	DeleteBackupVault(ctx context.Context, params *backup.DeleteBackupVaultInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultOutput, error)
	PutBackupVaultAccessPolicy(ctx context.Context, params *backup.PutBackupVaultAccessPolicyInput, optFns ...func(*backup.Options)) (*backup.PutBackupVaultAccessPolicyOutput, error)
	DeleteBackupVaultAccessPolicy(ctx context.Context, params *backup.DeleteBackupVaultAccessPolicyInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupVaultAccessPolicyOutput, error)
	CreateBackupPlan(ctx context.Context, params *backup.CreateBackupPlanInput, optFns ...func(*backup.Options)) (*backup.CreateBackupPlanOutput, error)
	UpdateBackupPlan(ctx context.Context, params *backup.UpdateBackupPlanInput, optFns ...func(*backup.Options)) (*backup.UpdateBackupPlanOutput, error)
	DeleteBackupPlan(ctx context.Context, params *backup.DeleteBackupPlanInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupPlanOutput, error)
	ListBackupPlans(ctx context.Context, params *backup.ListBackupPlansInput, optFns ...func(*backup.Options)) (*backup.ListBackupPlansOutput, error)
	CreateBackupSelection(ctx context.Context, params *backup.CreateBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.CreateBackupSelectionOutput, error)
	ListBackupSelections(ctx context.Context, params *backup.ListBackupSelectionsInput, optFns ...func(*backup.Options)) (*backup.ListBackupSelectionsOutput, error)
	DeleteBackupSelection(ctx context.Context, params *backup.DeleteBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.DeleteBackupSelectionOutput, error)
}

type BackupClient struct {
	region string
	Client BackupAPIInterface
}

func NewBackupClient(ctx context.Context, endpointURL string, accessKeyID string, accessKeySecret string, region string, sslVerify bool) (BackupClientRepository, error) {
	httpClient := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
		if !sslVerify {
			if tr.TLSClientConfig == nil {
				tr.TLSClientConfig = &tls.Config{}
			}
			tr.TLSClientConfig.InsecureSkipVerify = true
		}
	})

	loadOptions := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithHTTPClient(httpClient),
	}
	if accessKeyID != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, err
	}
	realClient := backup.NewFromConfig(cfg, func(o *backup.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})
	return &BackupClient{
		region: region,
		Client: realClient,
	}, nil
}

// EnsureVault creates the vault or, when it already exists, describes it.
// Either way the vault ARN is returned.
func (b *BackupClient) EnsureVault(ctx context.Context, name string, tags map[string]string) (string, error) {
	out, err := b.Client.CreateBackupVault(ctx, &backup.CreateBackupVaultInput{
		BackupVaultName: aws.String(name),
		BackupVaultTags: tags,
	})
	if err == nil {
		return aws.ToString(out.BackupVaultArn), nil
	}
	if !isAlreadyExists(err) {
		return "", fmt.Errorf("failed to create vault %s: %w", name, err)
	}
	described, err := b.Client.DescribeBackupVault(ctx, &backup.DescribeBackupVaultInput{
		BackupVaultName: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe vault %s: %w", name, err)
	}
	return aws.ToString(described.BackupVaultArn), nil
}

func (b *BackupClient) DeleteVault(ctx context.Context, name string) error {
	_, err := b.Client.DeleteBackupVault(ctx, &backup.DeleteBackupVaultInput{
		BackupVaultName: aws.String(name),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete vault %s: %w", name, err)
	}
	return nil
}

func (b *BackupClient) PutVaultAccessPolicy(ctx context.Context, name string, policyDocument string) error {
	_, err := b.Client.PutBackupVaultAccessPolicy(ctx, &backup.PutBackupVaultAccessPolicyInput{
		BackupVaultName: aws.String(name),
		Policy:          aws.String(policyDocument),
	})
	if err != nil {
		return fmt.Errorf("failed to put access policy on vault %s: %w", name, err)
	}
	return nil
}

func (b *BackupClient) DeleteVaultAccessPolicy(ctx context.Context, name string) error {
	_, err := b.Client.DeleteBackupVaultAccessPolicy(ctx, &backup.DeleteBackupVaultAccessPolicyInput{
		BackupVaultName: aws.String(name),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete access policy on vault %s: %w", name, err)
	}
	return nil
}

// EnsurePlan creates the plan or updates the existing plan of the same name
// so the rules always match the resolved policy. Returns plan ID and ARN.
func (b *BackupClient) EnsurePlan(ctx context.Context, plan entity.BackupPlan) (string, string, error) {
	planInput := &types.BackupPlanInput{
		BackupPlanName: aws.String(plan.Name),
		Rules:          buildRules(plan.Rules),
	}

	existingID, err := b.FindPlanID(ctx, plan.Name)
	if err != nil {
		return "", "", err
	}
	if existingID != "" {
		out, err := b.Client.UpdateBackupPlan(ctx, &backup.UpdateBackupPlanInput{
			BackupPlanId: aws.String(existingID),
			BackupPlan:   planInput,
		})
		if err != nil {
			return "", "", fmt.Errorf("failed to update plan %s: %w", plan.Name, err)
		}
		return aws.ToString(out.BackupPlanId), aws.ToString(out.BackupPlanArn), nil
	}

	out, err := b.Client.CreateBackupPlan(ctx, &backup.CreateBackupPlanInput{
		BackupPlan:     planInput,
		BackupPlanTags: plan.Tags,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create plan %s: %w", plan.Name, err)
	}
	return aws.ToString(out.BackupPlanId), aws.ToString(out.BackupPlanArn), nil
}

func (b *BackupClient) DeletePlan(ctx context.Context, planID string) error {
	_, err := b.Client.DeleteBackupPlan(ctx, &backup.DeleteBackupPlanInput{
		BackupPlanId: aws.String(planID),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete plan %s: %w", planID, err)
	}
	return nil
}

// FindPlanID pages through the plan list and returns the ID of the plan with
// the given name, or empty when no such plan exists.
func (b *BackupClient) FindPlanID(ctx context.Context, name string) (string, error) {
	var next *string
	for {
		out, err := b.Client.ListBackupPlans(ctx, &backup.ListBackupPlansInput{
			NextToken: next,
		})
		if err != nil {
			return "", fmt.Errorf("failed to list plans: %w", err)
		}
		for _, member := range out.BackupPlansList {
			if aws.ToString(member.BackupPlanName) == name {
				return aws.ToString(member.BackupPlanId), nil
			}
		}
		if out.NextToken == nil {
			return "", nil
		}
		next = out.NextToken
	}
}

// EnsureSelection creates the selection unless one with the same name is
// already bound to the plan. Selections are immutable on the control plane,
// an existing one is taken as ensured.
func (b *BackupClient) EnsureSelection(ctx context.Context, planID string, selection entity.BackupSelection) (string, error) {
	existing, err := b.ListSelections(ctx, planID)
	if err != nil {
		return "", err
	}
	if id, ok := existing[selection.Name]; ok {
		return id, nil
	}

	out, err := b.Client.CreateBackupSelection(ctx, &backup.CreateBackupSelectionInput{
		BackupPlanId: aws.String(planID),
		BackupSelection: &types.BackupSelection{
			SelectionName: aws.String(selection.Name),
			IamRoleArn:    aws.String(selection.RoleARN),
			ListOfTags: []types.Condition{
				{
					ConditionType:  types.ConditionTypeStringequals,
					ConditionKey:   aws.String(selection.TagKey),
					ConditionValue: aws.String(selection.TagValue),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create selection %s: %w", selection.Name, err)
	}
	return aws.ToString(out.SelectionId), nil
}

func (b *BackupClient) ListSelections(ctx context.Context, planID string) (map[string]string, error) {
	selections := make(map[string]string)
	var next *string
	for {
		out, err := b.Client.ListBackupSelections(ctx, &backup.ListBackupSelectionsInput{
			BackupPlanId: aws.String(planID),
			NextToken:    next,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list selections for plan %s: %w", planID, err)
		}
		for _, member := range out.BackupSelectionsList {
			selections[aws.ToString(member.SelectionName)] = aws.ToString(member.SelectionId)
		}
		if out.NextToken == nil {
			return selections, nil
		}
		next = out.NextToken
	}
}

func (b *BackupClient) DeleteSelection(ctx context.Context, planID string, selectionID string) error {
	_, err := b.Client.DeleteBackupSelection(ctx, &backup.DeleteBackupSelectionInput{
		BackupPlanId: aws.String(planID),
		SelectionId:  aws.String(selectionID),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete selection %s: %w", selectionID, err)
	}
	return nil
}

func buildRules(rules []entity.PlanRule) []types.BackupRuleInput {
	out := make([]types.BackupRuleInput, 0, len(rules))
	for _, rule := range rules {
		lifecycle := &types.Lifecycle{
			DeleteAfterDays: aws.Int64(int64(rule.DeleteAfterDays)),
		}
		if rule.ColdStorageAfterDays != nil {
			lifecycle.MoveToColdStorageAfterDays = aws.Int64(int64(*rule.ColdStorageAfterDays))
		}
		out = append(out, types.BackupRuleInput{
			RuleName:              aws.String(rule.RuleName),
			TargetBackupVaultName: aws.String(rule.TargetVaultName),
			ScheduleExpression:    aws.String(rule.Schedule),
			Lifecycle:             lifecycle,
		})
	}
	return out
}

func isAlreadyExists(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "AlreadyExistsException"
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException"
}
