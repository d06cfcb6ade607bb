package entity

// ResolvedPolicy is the outcome of resolving one tier against an environment:
// the schedule the plan rule runs on, how long recovery points live and,
// for cold-storage environments, when they transition to cold storage.
type ResolvedPolicy struct {
	Tier                 Tier   `json:"tier"`
	Environment          string `json:"environment"`
	Schedule             string `json:"schedule"`
	DeleteAfterDays      int    `json:"delete_after_days"`
	ColdStorageAfterDays *int   `json:"cold_storage_after_days,omitempty"`
}

// BackupPlan describes the plan to ensure on the control plane.
type BackupPlan struct {
	Name  string     `json:"name"`
	Rules []PlanRule `json:"rules"`
	Tags  map[string]string
}

type PlanRule struct {
	RuleName             string `json:"rule_name"`
	TargetVaultName      string `json:"target_vault_name"`
	Schedule             string `json:"schedule"`
	DeleteAfterDays      int    `json:"delete_after_days"`
	ColdStorageAfterDays *int   `json:"cold_storage_after_days,omitempty"`
}

// BackupSelection binds a plan to workloads carrying the selection tag.
type BackupSelection struct {
	Name     string `json:"name"`
	RoleARN  string `json:"role_arn"`
	TagKey   string `json:"tag_key"`
	TagValue string `json:"tag_value"`
}
