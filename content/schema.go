package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed project.schema.json
var projectSchemaJSON string

var projectSchema struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func compiledProjectSchema() (*gojsonschema.Schema, error) {
	projectSchema.once.Do(func() {
		projectSchema.schema, projectSchema.err = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(projectSchemaJSON))
	})
	return projectSchema.schema, projectSchema.err
}

// ValidationError lists every schema violation of one record.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid project: " + strings.Join(e.Problems, "; ")
}

// ValidateProject checks raw JSON against the project schema. Syntax errors
// are returned as-is; schema violations as a *ValidationError.
func ValidateProject(raw []byte) error {
	schema, err := compiledProjectSchema()
	if err != nil {
		return fmt.Errorf("compile project schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("parse project: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return &ValidationError{Problems: problems}
}
