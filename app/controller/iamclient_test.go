package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/smithy-go"
	"go.uber.org/mock/gomock"
)

func NewIAMClientWithInterface(client IAMAPIInterface) *IAMClient {
	return &IAMClient{Client: client}
}

func TestEnsureBackupRole(t *testing.T) {
	roleARN := "arn:aws:iam::111122223333:role/backup-prod-service-role"

	testCases := []struct {
		name          string
		createError   error
		getError      error
		attachError   error
		expectedARN   string
		expectedError bool
	}{
		{
			name:        "created",
			expectedARN: roleARN,
		},
		{
			name: "already exists",
			createError: &smithy.GenericAPIError{
				Code:    "EntityAlreadyExists",
				Message: "role exists",
			},
			expectedARN: roleARN,
		},
		{
			name:          "create denied",
			createError:   &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"},
			expectedError: true,
		},
		{
			name: "get fails after already exists",
			createError: &smithy.GenericAPIError{
				Code:    "EntityAlreadyExists",
				Message: "role exists",
			},
			getError:      errors.New("throttled"),
			expectedError: true,
		},
		{
			name:          "attach fails",
			attachError:   errors.New("iam error"),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := NewMockIAMAPIInterface(ctrl)
			api.EXPECT().CreateRole(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, input *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error) {
					if tc.createError != nil {
						return nil, tc.createError
					}
					return &iam.CreateRoleOutput{Role: &types.Role{Arn: aws.String(roleARN)}}, nil
				}).Times(1)
			api.EXPECT().GetRole(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, input *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
					if tc.getError != nil {
						return nil, tc.getError
					}
					return &iam.GetRoleOutput{Role: &types.Role{Arn: aws.String(roleARN)}}, nil
				}).AnyTimes()
			api.EXPECT().AttachRolePolicy(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&iam.AttachRolePolicyOutput{}, tc.attachError).AnyTimes()

			client := NewIAMClientWithInterface(api)

			arn, err := client.EnsureBackupRole(context.Background(), "backup-prod-service-role")
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
