package policy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Netcracker/qubership-backup-provisioner-go/backup-provisioner/app/entity"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

//go:embed schema/policy.schema.json
var policySchema string

// Document is the YAML policy document. Everything is optional; omitted
// settings keep their built-in defaults.
type Document struct {
	Version                 int                     `yaml:"version"`
	ProtectedEnvironments   []string                `yaml:"protected_environments"`
	ColdStorageEnvironments []string                `yaml:"cold_storage_environments"`
	SelectionTagKey         string                  `yaml:"selection_tag_key"`
	Tiers                   map[string]TierDocument `yaml:"tiers"`
}

type TierDocument struct {
	DefaultSchedule      string            `yaml:"default_schedule"`
	Schedules            map[string]string `yaml:"schedules"`
	DeleteAfterDays      int               `yaml:"delete_after_days"`
	ColdStorageAfterDays int               `yaml:"cold_storage_after_days"`
	SelectionTagValue    string            `yaml:"selection_tag_value"`
}

// LoadDocument reads, validates and merges a policy document over the
// built-in defaults. Flag-level sentinel overrides are applied on top when
// non-nil.
func LoadDocument(path string, protectedEnvs []string, coldStorageEnvs []string, tagKey string) (*Set, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy document %s: %w", path, err)
	}
	return ParseDocument(content, protectedEnvs, coldStorageEnvs, tagKey)
}

func ParseDocument(content []byte, protectedEnvs []string, coldStorageEnvs []string, tagKey string) (*Set, error) {
	if err := validateDocument(content); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy document: %w", err)
	}

	tiers := DefaultTiers()
	for name, td := range doc.Tiers {
		tier, err := entity.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("policy document: %w", err)
		}
		tp := tiers[tier]
		if td.DefaultSchedule != "" {
			tp.DefaultSchedule = td.DefaultSchedule
		}
		if td.Schedules != nil {
			tp.Schedules = td.Schedules
		}
		if td.DeleteAfterDays != 0 {
			tp.DeleteAfterDays = td.DeleteAfterDays
		}
		if td.ColdStorageAfterDays != 0 {
			tp.ColdStorageAfterDays = td.ColdStorageAfterDays
		}
		if td.SelectionTagValue != "" {
			tp.TagValue = td.SelectionTagValue
		}
		tiers[tier] = tp
	}

	protected := DefaultProtectedEnvironments
	if doc.ProtectedEnvironments != nil {
		protected = doc.ProtectedEnvironments
	}
	if protectedEnvs != nil {
		protected = protectedEnvs
	}

	coldStorage := DefaultColdStorageEnvironments
	if doc.ColdStorageEnvironments != nil {
		coldStorage = doc.ColdStorageEnvironments
	}
	if coldStorageEnvs != nil {
		coldStorage = coldStorageEnvs
	}

	key := doc.SelectionTagKey
	if tagKey != "" {
		key = tagKey
	}

	return NewSet(tiers, protected, coldStorage, key)
}

func validateDocument(content []byte) error {
	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("failed to convert policy document to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("failed to unmarshal policy document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("policy.schema.json", strings.NewReader(policySchema)); err != nil {
		return fmt.Errorf("failed to load policy schema: %w", err)
	}
	schema, err := compiler.Compile("policy.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile policy schema: %w", err)
	}
	if err := schema.Validate(document); err != nil {
		return fmt.Errorf("policy document is invalid: %w", err)
	}
	return nil
}
