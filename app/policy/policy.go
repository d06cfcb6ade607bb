package policy

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
)

var ErrUnknownTier = errors.New("unknown tier")

// TierPolicy holds the schedule and retention settings for one tier.
// Schedules maps known environment names to schedule expressions; anything
// not in the map resolves to DefaultSchedule.
type TierPolicy struct {
	DefaultSchedule      string
	Schedules            map[string]string
	DeleteAfterDays      int
	ColdStorageAfterDays int
	TagValue             string
}

// Set is the full policy surface: per-tier settings plus the sentinel
// environment sets. Sentinels are explicit configuration, never hardcoded
// string comparisons, so every deployment target resolves consistently.
type Set struct {
	tiers           map[entity.Tier]TierPolicy
	protectedEnvs   map[string]struct{}
	coldStorageEnvs map[string]struct{}
	tagKey          string
}

func NewSet(tiers map[entity.Tier]TierPolicy, protectedEnvs []string, coldStorageEnvs []string, tagKey string) (*Set, error) {
	if tagKey == "" {
		tagKey = DefaultTagKey
	}
	for _, tier := range entity.Tiers() {
		tp, ok := tiers[tier]
		if !ok {
			return nil, fmt.Errorf("policy set is missing tier %q", tier)
		}
		if err := ValidateSchedule(tp.DefaultSchedule); err != nil {
			return nil, fmt.Errorf("tier %s default schedule: %w", tier, err)
		}
		for env, expr := range tp.Schedules {
			if err := ValidateSchedule(expr); err != nil {
				return nil, fmt.Errorf("tier %s schedule for environment %q: %w", tier, env, err)
			}
		}
		if tp.DeleteAfterDays <= 0 {
			return nil, fmt.Errorf("tier %s delete_after_days must be positive", tier)
		}
		if tp.ColdStorageAfterDays < 0 {
			return nil, fmt.Errorf("tier %s cold_storage_after_days must not be negative", tier)
		}
	}
	return &Set{
		tiers:           tiers,
		protectedEnvs:   toSet(protectedEnvs),
		coldStorageEnvs: toSet(coldStorageEnvs),
		tagKey:          tagKey,
	}, nil
}

// Resolve maps (tier, environment) to the effective schedule and retention.
// Unknown environments silently fall back to the tier defaults; the only
// error is an unknown tier. Resolution is pure, repeated calls with the same
// inputs yield the same result.
func (s *Set) Resolve(tier entity.Tier, environment string) (entity.ResolvedPolicy, error) {
	tp, ok := s.tiers[tier]
	if !ok {
		return entity.ResolvedPolicy{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	schedule := tp.DefaultSchedule
	if expr, ok := tp.Schedules[environment]; ok {
		schedule = expr
	}
	resolved := entity.ResolvedPolicy{
		Tier:            tier,
		Environment:     environment,
		Schedule:        schedule,
		DeleteAfterDays: tp.DeleteAfterDays,
	}
	if _, ok := s.coldStorageEnvs[environment]; ok {
		days := tp.ColdStorageAfterDays
		resolved.ColdStorageAfterDays = &days
	}
	return resolved, nil
}

// Protect reports whether vaults for the environment carry the
// deny-destructive access policy.
func (s *Set) Protect(environment string) bool {
	_, ok := s.protectedEnvs[environment]
	return ok
}

// SelectionTag returns the tag pair binding workloads to the tier's plan.
func (s *Set) SelectionTag(tier entity.Tier) (key string, value string, err error) {
	tp, ok := s.tiers[tier]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	return s.tagKey, tp.TagValue, nil
}

func (s *Set) TagKey() string {
	return s.tagKey
}

func (s *Set) ProtectedEnvironments() []string {
	return sortedKeys(s.protectedEnvs)
}

func (s *Set) ColdStorageEnvironments() []string {
	return sortedKeys(s.coldStorageEnvs)
}

func toSet(envs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(envs))
	for _, env := range envs {
		if env == "" {
			continue
		}
		set[env] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
