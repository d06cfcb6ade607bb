package entity

type Run struct {
	RunID        string `json:"run_id" db:"run_id"`
	Type         string `json:"type" db:"type"`
	Status       string `json:"status" db:"status"`
	Environment  string `json:"environment" db:"environment"`
	Err          string `json:"err" db:"err"`
	SnapshotPath string `db:"snapshot_path"`
	CreatedAt    string `db:"created_at"`
}

type Resource struct {
	RunID string `json:"run_id" db:"run_id"`
	Tier  string `json:"tier" db:"tier"`
	Kind  string `json:"kind" db:"kind"`
	Name  string `json:"name" db:"name"`
	ARN   string `json:"arn" db:"arn"`
}
