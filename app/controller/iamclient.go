package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/smithy-go"
)

const backupTrustPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"Service": "backup.amazonaws.com"},
      "Action": "sts:AssumeRole"
    }
  ]
}`

var backupManagedPolicies = []string{
	"arn:aws:iam::aws:policy/service-role/AWSBackupServiceRolePolicyForBackup",
	"arn:aws:iam::aws:policy/service-role/AWSBackupServiceRolePolicyForRestores",
}

type IAMClientRepository interface {
	EnsureBackupRole(ctx context.Context, roleName string) (string, error)
}

//go:generate mockgen -source=iamclient.go -destination=iammock.go -package=controller
type IAMAPIInterface interface {
	GetRole(ctx context.Context, params *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	CreateRole(ctx context.Context, params *iam.CreateRoleInput, optFns ...func(*iam.Options)) (*iam.CreateRoleOutput, error)
	AttachRolePolicy(ctx context.Context, params *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
}

type IAMClient struct {
	Client IAMAPIInterface
}

func NewIAMClient(ctx context.Context, endpointURL string, accessKeyID string, accessKeySecret string, region string) (IAMClientRepository, error) {
	loadOptions := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKeyID != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, err
	}
	realClient := iam.NewFromConfig(cfg, func(o *iam.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})
	return &IAMClient{Client: realClient}, nil
}

// EnsureBackupRole creates the service role trusted by backup.amazonaws.com
// and attaches the AWS managed backup/restore policies. Attaching an already
// attached managed policy is a no-op on the IAM side.
func (c *IAMClient) EnsureBackupRole(ctx context.Context, roleName string) (string, error) {
	var roleARN string
	created, err := c.Client.CreateRole(ctx, &iam.CreateRoleInput{
		RoleName:                 aws.String(roleName),
		AssumeRolePolicyDocument: aws.String(backupTrustPolicy),
	})
	switch {
	case err == nil:
		roleARN = aws.ToString(created.Role.Arn)
	case isEntityAlreadyExists(err):
		existing, err := c.Client.GetRole(ctx, &iam.GetRoleInput{RoleName: aws.String(roleName)})
		if err != nil {
			return "", fmt.Errorf("failed to get role %s: %w", roleName, err)
		}
		roleARN = aws.ToString(existing.Role.Arn)
	default:
		return "", fmt.Errorf("failed to create role %s: %w", roleName, err)
	}

	for _, policyARN := range backupManagedPolicies {
		_, err := c.Client.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
			RoleName:  aws.String(roleName),
			PolicyArn: aws.String(policyARN),
		})
		if err != nil {
			return "", fmt.Errorf("failed to attach policy %s to role %s: %w", policyARN, roleName, err)
		}
	}
	return roleARN, nil
}

func isEntityAlreadyExists(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "EntityAlreadyExists"
}
