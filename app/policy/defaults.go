package policy

import "github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"

const DefaultTagKey = "backup_plan"

// Historical sentinel values; kept as defaults so existing deployments
// resolve identically, overridable via flags or the policy document.
var (
	DefaultProtectedEnvironments   = []string{"platform", "staging"}
	DefaultColdStorageEnvironments = []string{"gcc-prod"}
)

// DefaultTiers returns the built-in tier policies: daily for high, weekly
// for medium, monthly for low, with the stock retention periods.
func DefaultTiers() map[entity.Tier]TierPolicy {
	return map[entity.Tier]TierPolicy{
		entity.TierHigh: {
			DefaultSchedule:      "cron(0 0 * * ? *)",
			Schedules:            map[string]string{},
			DeleteAfterDays:      7,
			ColdStorageAfterDays: 120,
			TagValue:             "High",
		},
		entity.TierMedium: {
			DefaultSchedule:      "cron(0 0 ? * SUN *)",
			Schedules:            map[string]string{},
			DeleteAfterDays:      28,
			ColdStorageAfterDays: 120,
			TagValue:             "Medium",
		},
		entity.TierLow: {
			DefaultSchedule:      "cron(0 0 1 * ? *)",
			Schedules:            map[string]string{},
			DeleteAfterDays:      90,
			ColdStorageAfterDays: 120,
			TagValue:             "Low",
		},
	}
}

// DefaultSet builds the stock policy set.
func DefaultSet() *Set {
	set, err := NewSet(DefaultTiers(), DefaultProtectedEnvironments, DefaultColdStorageEnvironments, DefaultTagKey)
	if err != nil {
		// The defaults above are static and validated by tests.
		panic(err)
	}
	return set
}
