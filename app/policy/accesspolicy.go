package policy

import (
	"encoding/json"
	"fmt"
)

// Destructive vault actions denied on protected environments, and the
// operational set that stays allowed so backups keep running.
var (
	deniedVaultActions = []string{
		"backup:DeleteBackupVault",
		"backup:DeleteBackupVaultAccessPolicy",
		"backup:DeleteBackupVaultNotifications",
		"backup:DeleteBackupPlan",
		"backup:DeleteBackupSelection",
		"backup:DeleteRecoveryPoint",
		"backup:UpdateRecoveryPointLifecycle",
	}
	allowedVaultActions = []string{
		"backup:CreateBackupVault",
		"backup:StartBackupJob",
		"backup:StartRestoreJob",
		"backup:GetBackupVaultNotifications",
		"backup:PutBackupVaultNotifications",
		"backup:GetBackupVaultAccessPolicy",
		"backup:PutBackupVaultAccessPolicy",
	}
)

type accessPolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string   `json:"Sid"`
	Effect    string   `json:"Effect"`
	Principal string   `json:"Principal"`
	Action    []string `json:"Action"`
	Resource  string   `json:"Resource"`
}

// VaultAccessPolicy renders the deny-destructive access policy document for
// a protected vault: destructive actions are denied for every principal,
// the operational set stays allowed.
func VaultAccessPolicy() (string, error) {
	document := accessPolicyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Sid:       "DenyDestructiveVaultActions",
				Effect:    "Deny",
				Principal: "*",
				Action:    deniedVaultActions,
				Resource:  "*",
			},
			{
				Sid:       "AllowOperationalVaultActions",
				Effect:    "Allow",
				Principal: "*",
				Action:    allowedVaultActions,
				Resource:  "*",
			},
		},
	}
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal vault access policy: %w", err)
	}
	return string(data), nil
}
