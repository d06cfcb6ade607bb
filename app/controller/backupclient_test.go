package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/backup"
	"github.com/aws/aws-sdk-go-v2/service/backup/types"
	"github.com/aws/smithy-go"
	"go.uber.org/mock/gomock"
)

func NewBackupClientWithInterface(client BackupAPIInterface) *BackupClient {
	return &BackupClient{
		region: "us-east-1",
		Client: client,
	}
}

func TestEnsureVault(t *testing.T) {
	testCases := []struct {
		name          string
		createError   error
		describeARN   string
		describeError error
		expectedARN   string
		expectedError bool
	}{
		{
			name:          "created",
			createError:   nil,
			expectedARN:   "arn:aws:backup:us-east-1:111122223333:backup-vault:backup-prod-high-vault",
			expectedError: false,
		},
		{
			name: "already exists",
			createError: &smithy.GenericAPIError{
				Code:    "AlreadyExistsException",
				Message: "vault exists",
			},
			describeARN:   "arn:aws:backup:us-east-1:111122223333:backup-vault:backup-prod-high-vault",
			expectedARN:   "arn:aws:backup:us-east-1:111122223333:backup-vault:backup-prod-high-vault",
			expectedError: false,
		},
		{
			name: "access denied",
			createError: &smithy.GenericAPIError{
				Code:    "AccessDeniedException",
				Message: "no",
			},
			expectedError: true,
		},
		{
			name: "describe fails after already exists",
			createError: &smithy.GenericAPIError{
				Code:    "AlreadyExistsException",
				Message: "vault exists",
			},
			describeError: errors.New("throttled"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockBackupAPIInterface(ctrl)
			api.EXPECT().CreateBackupVault(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, input *backup.CreateBackupVaultInput, optFns ...func(*backup.Options)) (*backup.CreateBackupVaultOutput, error) {
					if tc.createError != nil {
						return nil, tc.createError
					}
					return &backup.CreateBackupVaultOutput{BackupVaultArn: aws.String(tc.expectedARN)}, nil
				}).Times(1)
			api.EXPECT().DescribeBackupVault(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&backup.DescribeBackupVaultOutput{BackupVaultArn: aws.String(tc.describeARN)}, tc.describeError).AnyTimes()

			client := NewBackupClientWithInterface(api)

			arn, err := client.EnsureVault(context.Background(), "backup-prod-high-vault", map[string]string{"backup_plan": "High"})
			if tc.expectedError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if arn != tc.expectedARN {
				t.Fatalf("expected arn %s, got %s", tc.expectedARN, arn)
			}
		})
	}
}

func TestEnsurePlan(t *testing.T) {
	cold := 120
	plan := entity.BackupPlan{
		Name: "backup-gcc-prod-high-plan",
		Rules: []entity.PlanRule{
			{
				RuleName:             "backup-gcc-prod-high-rule",
				TargetVaultName:      "backup-gcc-prod-high-vault",
				Schedule:             "cron(0 0 * * ? *)",
				DeleteAfterDays:      7,
				ColdStorageAfterDays: &cold,
			},
		},
	}

	testCases := []struct {
		name         string
		existingID   string
		expectedID   string
		expectUpdate bool
	}{
		{
			name:         "creates new plan",
			existingID:   "",
			expectedID:   "plan-created",
			expectUpdate: false,
		},
		{
			name:         "updates existing plan",
			existingID:   "plan-existing",
			expectedID:   "plan-existing",
			expectUpdate: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockBackupAPIInterface(ctrl)
			listOut := &backup.ListBackupPlansOutput{}
			if tc.existingID != "" {
				listOut.BackupPlansList = []types.BackupPlansListMember{
					{
						BackupPlanId:   aws.String(tc.existingID),
						BackupPlanName: aws.String(plan.Name),
					},
				}
			}
			api.EXPECT().ListBackupPlans(gomock.Any(), gomock.Any(), gomock.Any()).Return(listOut, nil).Times(1)

			if tc.expectUpdate {
				api.EXPECT().UpdateBackupPlan(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, input *backup.UpdateBackupPlanInput, optFns ...func(*backup.Options)) (*backup.UpdateBackupPlanOutput, error) {
						if aws.ToString(input.BackupPlanId) != tc.existingID {
							t.Fatalf("expected update of plan %s, got %s", tc.existingID, aws.ToString(input.BackupPlanId))
						}
						if len(input.BackupPlan.Rules) != 1 {
							t.Fatalf("expected 1 rule, got %d", len(input.BackupPlan.Rules))
						}
						rule := input.BackupPlan.Rules[0]
						if aws.ToInt64(rule.Lifecycle.MoveToColdStorageAfterDays) != 120 {
							t.Fatalf("expected cold storage after 120 days, got %d", aws.ToInt64(rule.Lifecycle.MoveToColdStorageAfterDays))
						}
						return &backup.UpdateBackupPlanOutput{
							BackupPlanId:  aws.String(tc.existingID),
							BackupPlanArn: aws.String("arn:plan"),
						}, nil
					}).Times(1)
			} else {
				api.EXPECT().CreateBackupPlan(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&backup.CreateBackupPlanOutput{
						BackupPlanId:  aws.String(tc.expectedID),
						BackupPlanArn: aws.String("arn:plan"),
					}, nil).Times(1)
			}

			client := NewBackupClientWithInterface(api)

			planID, planARN, err := client.EnsurePlan(context.Background(), plan)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if planID != tc.expectedID {
				t.Fatalf("expected plan id %s, got %s", tc.expectedID, planID)
			}
			if planARN != "arn:plan" {
				t.Fatalf("expected plan arn arn:plan, got %s", planARN)
			}
		})
	}
}

func TestEnsureSelection(t *testing.T) {
	selection := entity.BackupSelection{
		Name:     "backup-prod-high-selection",
		RoleARN:  "arn:aws:iam::111122223333:role/backup-prod-service-role",
		TagKey:   "backup_plan",
		TagValue: "High",
	}

	testCases := []struct {
		name         string
		existing     map[string]*string
		expectedID   string
		expectCreate bool
	}{
		{
			name:         "creates selection",
			existing:     nil,
			expectedID:   "selection-created",
			expectCreate: true,
		},
		{
			name: "selection already bound",
			existing: map[string]*string{
				"backup-prod-high-selection": aws.String("selection-existing"),
			},
			expectedID:   "selection-existing",
			expectCreate: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockBackupAPIInterface(ctrl)
			listOut := &backup.ListBackupSelectionsOutput{}
			for name, id := range tc.existing {
				listOut.BackupSelectionsList = append(listOut.BackupSelectionsList, types.BackupSelectionsListMember{
					SelectionName: aws.String(name),
					SelectionId:   id,
				})
			}
			api.EXPECT().ListBackupSelections(gomock.Any(), gomock.Any(), gomock.Any()).Return(listOut, nil).Times(1)

			if tc.expectCreate {
				api.EXPECT().CreateBackupSelection(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, input *backup.CreateBackupSelectionInput, optFns ...func(*backup.Options)) (*backup.CreateBackupSelectionOutput, error) {
						if aws.ToString(input.BackupSelection.IamRoleArn) != selection.RoleARN {
							t.Fatalf("expected role arn %s, got %s", selection.RoleARN, aws.ToString(input.BackupSelection.IamRoleArn))
						}
						if len(input.BackupSelection.ListOfTags) != 1 {
							t.Fatalf("expected 1 tag condition, got %d", len(input.BackupSelection.ListOfTags))
						}
						return &backup.CreateBackupSelectionOutput{SelectionId: aws.String(tc.expectedID)}, nil
					}).Times(1)
			}

			client := NewBackupClientWithInterface(api)

			selectionID, err := client.EnsureSelection(context.Background(), "plan-id", selection)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if selectionID != tc.expectedID {
				t.Fatalf("expected selection id %s, got %s", tc.expectedID, selectionID)
			}
		})
	}
}

func TestDeleteVaultToleratesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackupAPIInterface(ctrl)
	api.EXPECT().DeleteBackupVault(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "gone"}).Times(1)

	client := NewBackupClientWithInterface(api)

	if err := client.DeleteVault(context.Background(), "backup-dev-low-vault"); err != nil {
		t.Fatalf("expected missing vault to be tolerated, got: %v", err)
	}
}

func TestFindPlanIDPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewMockBackupAPIInterface(ctrl)
	first := api.EXPECT().ListBackupPlans(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&backup.ListBackupPlansOutput{
			BackupPlansList: []types.BackupPlansListMember{
				{BackupPlanId: aws.String("other"), BackupPlanName: aws.String("backup-dev-low-plan")},
			},
			NextToken: aws.String("page2"),
		}, nil)
	api.EXPECT().ListBackupPlans(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&backup.ListBackupPlansOutput{
			BackupPlansList: []types.BackupPlansListMember{
				{BackupPlanId: aws.String("wanted"), BackupPlanName: aws.String("backup-dev-high-plan")},
			},
		}, nil).After(first)

	client := NewBackupClientWithInterface(api)

	planID, err := client.FindPlanID(context.Background(), "backup-dev-high-plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if planID != "wanted" {
		t.Fatalf("expected plan id wanted, got %s", planID)
	}
}
