package config

import "time"

type Config struct {
	Port            int           `long:"port" description:"HTTP server port" default:"8080"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" description:"Timeout for server shutdown" default:"2s"`

	Environment string `long:"environment" description:"Deployment environment the resources are provisioned for" default:"dev" env:"ENVIRONMENT"`
	NamePrefix  string `long:"name-prefix" description:"Prefix for provisioned resource names" default:"backup" env:"NAME_PREFIX"`
	NameSuffix  string `long:"name-suffix" description:"Explicit suffix for provisioned resource names" env:"NAME_SUFFIX"`

	PolicyFile      string   `long:"policy-file" description:"YAML policy document overriding built-in tier policies" env:"POLICY_FILE"`
	ProtectedEnvs   []string `long:"protected-env" description:"Environments whose vaults get the deny-destructive access policy" env:"PROTECTED_ENVS" env-delim:","`
	ColdStorageEnvs []string `long:"cold-storage-env" description:"Environments whose recovery points transition to cold storage" env:"COLD_STORAGE_ENVS" env-delim:","`
	SelectionTagKey string   `long:"selection-tag-key" description:"Tag key binding workloads to backup plans" env:"SELECTION_TAG_KEY"`

	Region          string `long:"region" description:"AWS region" default:"us-east-1" env:"AWS_REGION"`
	EndpointURL     string `long:"endpoint-url" description:"AWS endpoint override for local stacks" env:"AWS_ENDPOINT_URL"`
	AccessKeyID     string `long:"access-key-id" description:"AWS access key ID" env:"AWS_ACCESS_KEY_ID"`
	AccessKeySecret string `long:"access-key-secret" description:"AWS access key secret" env:"AWS_SECRET_ACCESS_KEY"`
	SslVerify       bool   `long:"ssl-verify" description:"Verify AWS endpoint certificates" env:"SSL_VERIFY"`

	RoleARN string `long:"role-arn" description:"Existing backup service role ARN, skips IAM role management" env:"BACKUP_ROLE_ARN"`

	SnapshotRoot string `long:"snapshot-root" description:"Local root for run snapshots" default:"/backup-snapshots" env:"SNAPSHOT_ROOT"`
	DBPath       string `long:"db-path" description:"SQLite DB file path" default:"/backup-snapshots/database.db" env:"DB_PATH"`

	S3URL          string `long:"s3-url" description:"S3 endpoint URL for snapshot archives" env:"S3_URL"`
	S3AccessKeyID  string `long:"s3-access-key-id" description:"S3 access key ID" env:"S3_KEY_ID"`
	S3AccessSecret string `long:"s3-access-key-secret" description:"S3 access key secret" env:"S3_KEY_SECRET"`
	BucketName     string `long:"s3-bucket" description:"S3 bucket for snapshot archives" env:"S3_BUCKET"`
	S3Region       string `long:"s3-region" description:"S3 region" default:"us-east-1"`
	S3Enabled      bool   `long:"s3-enabled" description:"Archive run snapshots to S3" env:"S3_ENABLED"`
	S3SslVerify    bool   `long:"s3-ssl-verify" description:"Verify S3 certificates" env:"S3_SSL_VERIFY"`
}
