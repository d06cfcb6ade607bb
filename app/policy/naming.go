package policy

import (
	"strings"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
)

// Namer builds deterministic resource names. The suffix is an explicit
// configuration input, so two runs with the same inputs always name the same
// resources.
type Namer struct {
	prefix      string
	environment string
	suffix      string
}

func NewNamer(prefix string, environment string, suffix string) Namer {
	if prefix == "" {
		prefix = "backup"
	}
	return Namer{
		prefix:      prefix,
		environment: environment,
		suffix:      suffix,
	}
}

func (n Namer) VaultName(tier entity.Tier) string {
	return n.join(string(tier), "vault")
}

func (n Namer) PlanName(tier entity.Tier) string {
	return n.join(string(tier), "plan")
}

func (n Namer) SelectionName(tier entity.Tier) string {
	return n.join(string(tier), "selection")
}

func (n Namer) RuleName(tier entity.Tier) string {
	return n.join(string(tier), "rule")
}

func (n Namer) RoleName() string {
	return n.join("service-role")
}

func (n Namer) Environment() string {
	return n.environment
}

// ForEnvironment returns a namer for another environment keeping the
// configured prefix and suffix.
func (n Namer) ForEnvironment(environment string) Namer {
	n.environment = environment
	return n
}

func (n Namer) join(parts ...string) string {
	all := append([]string{n.prefix, n.environment}, parts...)
	if n.suffix != "" {
		all = append(all, n.suffix)
	}
	kept := all[:0]
	for _, p := range all {
		if p = strings.Trim(p, "-"); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "-")
}
