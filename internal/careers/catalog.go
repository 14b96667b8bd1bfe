// Package careers provides the static career-path catalog used for recommendations.
package careers

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed catalog.json schema.json
var catalogFS embed.FS

// CareerPath is a static catalog entry describing a career direction.
// The catalog is loaded once at process start; path embeddings are computed
// lazily by the recommendation engine and never stored here.
type CareerPath struct {
	Key               string   `json:"key"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	RecommendedSkills []string `json:"recommended_skills"`
	Roadmap           []string `json:"roadmap"`
}

// Load parses and validates the embedded catalog.
// The catalog JSON is checked against its schema before unmarshaling, so a
// malformed catalog fails at startup rather than at recommendation time.
func Load() ([]CareerPath, error) {
	schemaBytes, err := catalogFS.ReadFile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog schema: %w", err)
	}
	catalogBytes, err := catalogFS.ReadFile("catalog.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	if err := validateCatalog(schemaBytes, catalogBytes); err != nil {
		return nil, err
	}

	var paths []CareerPath
	if err := json.Unmarshal(catalogBytes, &paths); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	return paths, nil
}

// validateCatalog validates catalog JSON against the schema.
func validateCatalog(schemaBytes, catalogBytes []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(catalogBytes)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("catalog schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("career path catalog is invalid:\n")
	for i, desc := range result.Errors() {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, desc.Field(), desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
