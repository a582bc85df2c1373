package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/geo-radar/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

// Targets is the monitored-query configuration: the per-organization
// taxonomies plus the list of queries to audit on each run.
type Targets struct {
	Organizations []types.OrganizationConfig `json:"organizations" validate:"dive"`
	Queries       []types.MonitoredQuery     `json:"queries" validate:"required,dive"`
}

// targetsSchema is the JSON Schema the targets file must satisfy. Checked
// before unmarshalling so malformed files fail with a field-level message
// instead of a zero-value struct.
const targetsSchema = `{
  "type": "object",
  "required": ["organizations", "queries"],
  "properties": {
    "organizations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "target_domain"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "target_domain": {"type": "string", "minLength": 1},
          "partners": {"type": "array", "items": {"type": "string"}},
          "keywords": {"type": "array", "items": {"type": "string"}},
          "color": {"type": "string"}
        }
      }
    },
    "queries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["organization", "query"],
        "properties": {
          "organization": {"type": "string", "minLength": 1},
          "query": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// LoadTargetsFile reads and validates a JSON targets file.
func LoadTargetsFile(path string) (*Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read targets file %s: %w", path, err)
	}
	return ParseTargets(data)
}

// ParseTargets validates raw JSON against the targets schema and unmarshals
// it.
func ParseTargets(data []byte) (*Targets, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(targetsSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate targets JSON: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("invalid targets file: %s", strings.Join(issues, "; "))
	}

	var t Targets
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse targets JSON: %w", err)
	}

	if err := validator.New().Struct(&t); err != nil {
		return nil, fmt.Errorf("invalid targets config: %w", err)
	}
	return &t, nil
}

// TargetsFromRows builds targets from CONFIG_CIBLES worksheet rows, one row
// per monitored query: organization, query, target domain, comma-separated
// partners, comma-separated keywords. Rows are lenient: a blank target or
// missing lists degrade scoring to near-zero instead of failing the run.
// Organizations repeated across rows keep the first row's taxonomy.
func TargetsFromRows(rows [][]string) *Targets {
	t := &Targets{}
	seen := make(map[string]bool)

	for _, row := range rows {
		org := strings.TrimSpace(cell(row, 0))
		query := strings.TrimSpace(cell(row, 1))
		if org == "" || query == "" {
			continue
		}

		t.Queries = append(t.Queries, types.MonitoredQuery{
			Organization: org,
			Query:        query,
		})

		if !seen[org] {
			seen[org] = true
			t.Organizations = append(t.Organizations, types.OrganizationConfig{
				Name:         org,
				TargetDomain: strings.TrimSpace(cell(row, 2)),
				Partners:     splitList(cell(row, 3)),
				Keywords:     splitList(cell(row, 4)),
			})
		}
	}
	return t
}

// OrgMap indexes the organizations by name for lookup during scoring.
func (t *Targets) OrgMap() map[string]types.OrganizationConfig {
	m := make(map[string]types.OrganizationConfig, len(t.Organizations))
	for _, org := range t.Organizations {
		m[org.Name] = org
	}
	return m
}

// splitList parses a comma-separated cell into a trimmed, blank-free list.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
