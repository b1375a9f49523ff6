package phi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTaxonomy is the HIPAA PHI reference list the classification stage
// sends to the service. Each surviving finding is assigned one of these
// categories.
var DefaultTaxonomy = []string{
	"Social Security numbers",
	"Medical record numbers, health plan numbers",
	"Account numbers",
	"Biometric identifiers (finger/voice prints)",
	"Names",
	"Full face photographic/comparable images",
	"Dates (except year), ages >89",
	"Geographic subdivisions < state",
	"Certificate/license numbers",
	"Vehicle identifiers",
	"Device identifiers",
	"Telephone numbers",
	"Fax numbers",
	"Email addresses",
	"Web URLs, IP addresses",
	"Any other unique identifying number/code",
}

type taxonomyFile struct {
	Categories []string `yaml:"categories"`
}

// LoadTaxonomy reads a category list from a YAML file of the form:
//
//	categories:
//	  - Names
//	  - Telephone numbers
//
// Deployments use this to tighten or extend the reference list without a
// rebuild.
func LoadTaxonomy(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var tf taxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}
	if len(tf.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy file %s lists no categories", path)
	}
	return tf.Categories, nil
}
