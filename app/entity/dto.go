package entity

// REST request/response shapes.

type ApplyRequest struct {
	// DryRun resolves and records the run without touching the control plane.
	DryRun bool `json:"dry_run,omitempty"`
}

type ApplyResponse struct {
	RunID string `json:"run_id"` // uuid
}

type TeardownRequest struct {
	// KeepVaults leaves vaults (and their recovery points) in place and only
	// removes selections and plans.
	KeepVaults bool `json:"keep_vaults,omitempty"`
}

type TeardownResponse struct {
	RunID string `json:"run_id"`
}

type ResolveRequest struct {
	Tier string
	// Environment overrides the configured environment when non-empty.
	Environment string
}

type RunStatusRequest struct {
	RunID string
}

type RunStatusResponse struct {
	RunID       string     `json:"run_id"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Environment string     `json:"environment"`
	Error       string     `json:"err"`
	Resources   []Resource `json:"resources,omitempty"`
	StatusCode  int        `json:"-"`
}

type LatestRunRequest struct {
	// Type is the run type to look up, "apply" when empty.
	Type string
}

type RunListResponse struct {
	RunIDs []string `json:"run_ids"`
}

type RemoveRunRequest struct {
	RunID string
}

type RemoveRunResponse struct {
	RunID      string `json:"run_id"`
	StatusCode int    `json:"-"`
}

type SnapshotRequest struct {
	RunID string
}

type SnapshotResponse struct {
	Document   []byte `json:"-"`
	StatusCode int    `json:"-"`
}

type ProtectionRequest struct {
	Environment string
}

type VaultProtection struct {
	Tier      Tier   `json:"tier"`
	Vault     string `json:"vault"`
	Protected bool   `json:"protected"`
}

type ProtectionResponse struct {
	Environment string            `json:"environment"`
	Protected   bool              `json:"protected"`
	Vaults      []VaultProtection `json:"vaults"`
}

type SnapshotURLRequest struct {
	RunID      string
	Expiration int
}

type SnapshotURLResponse struct {
	Urls []string `json:"urls"`
}

// PolicyDescription reports the full resolved policy surface for the
// configured environment, one entry per tier.
type PolicyDescription struct {
	Environment string           `json:"environment"`
	Protected   bool             `json:"protected"`
	TagKey      string           `json:"tag_key"`
	Tiers       []TierPolicyInfo `json:"tiers"`
}

type TierPolicyInfo struct {
	ResolvedPolicy
	TagValue string `json:"tag_value"`
}
