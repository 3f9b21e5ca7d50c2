package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/targets.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one failed schema assertion.
type ValidationIssue struct {
	Path    string // JSON pointer into the manifest, e.g. "/targets/x86_64-apple-darwin/dir"
	Message string
	Keyword string // failing keyword, e.g. "required", "pattern", "not"
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("targets.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("targets.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw YAML bytes against the manifest JSON schema.
// The error return is for YAML syntax or schema compilation failures;
// schema violations are reported in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	c := issueCollector{inst: inst}
	c.walk(ve)
	if len(c.issues) == 0 {
		c.issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Valid: false, Issues: c.issues}, nil
}

// ValidateFile reads a file and validates it against the manifest schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// issueCollector flattens a ValidationError tree into one issue per failed
// assertion. inst is the validated document, used to quote offending values.
type issueCollector struct {
	inst   any
	issues []ValidationIssue
}

func (c *issueCollector) walk(ve *jsonschema.ValidationError) {
	switch k := ve.ErrorKind.(type) {
	case *kind.PropertyNames:
		// Property names are validated as standalone values, so the error
		// carries no location. Only targets constrains its keys.
		c.add(ValidationIssue{
			Path:    "/targets/" + escapePointer(k.Property),
			Message: printer.Sprintf("%q is not a target triple (want arch-vendor-os[-env])", k.Property),
			Keyword: "propertyNames",
		})
		return
	case *kind.Not:
		// The only "not" in the schema guards targets.<triple>.dir.
		path := pointer(ve.InstanceLocation)
		msg := k.LocalizedString(printer)
		if dir, ok := lookup(c.inst, ve.InstanceLocation).(string); ok && len(ve.InstanceLocation) == 3 {
			msg = printer.Sprintf("dir %q of %s must be a relative path inside the bin directory", dir, ve.InstanceLocation[1])
		}
		c.add(ValidationIssue{Path: path, Message: msg, Keyword: "not"})
		return
	}

	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			c.walk(cause)
		}
		return
	}

	keyword := ""
	if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	c.add(ValidationIssue{
		Path:    pointer(ve.InstanceLocation),
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	})
}

func (c *issueCollector) add(issue ValidationIssue) {
	c.issues = append(c.issues, issue)
}

// pointer renders an instance location as a JSON pointer; the root is "".
func pointer(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	parts := make([]string, len(loc))
	for i, tok := range loc {
		parts[i] = escapePointer(tok)
	}
	return "/" + strings.Join(parts, "/")
}

func escapePointer(tok string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(tok)
}

// lookup returns the value at loc in a decoded JSON document, or nil.
func lookup(doc any, loc []string) any {
	for _, tok := range loc {
		m, ok := doc.(map[string]any)
		if !ok {
			return nil
		}
		doc = m[tok]
	}
	return doc
}

// normalizeYAML converts YAML-decoded values to JSON-compatible types.
// Mappings with string keys decode to map[string]interface{}; any other key
// type yields map[interface{}]interface{}, whose keys are stringified here.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	default:
		return val
	}
}
