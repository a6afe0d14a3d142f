package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaBytes []byte

const (
	// EnvConfig names the environment variable pointing at the manifest file.
	EnvConfig = "RAILS_DOCS_CONFIG"

	// EnvDocsDir names the environment variable overriding the docs directory.
	EnvDocsDir = "RAILS_DOCS_DIR"

	// ReservedGroup is the pseudo-group backed by the complete document.
	ReservedGroup = "all"
)

// Group describes one loadable documentation group.
type Group struct {
	Name  string `json:"name" yaml:"name"`
	File  string `json:"file" yaml:"file"`
	Title string `json:"title,omitempty" yaml:"title"`
}

// DisplayTitle returns the group's configured title, or one derived from
// its name when the manifest leaves it out.
func (g Group) DisplayTitle() string {
	if g.Title != "" {
		return g.Title
	}
	if g.Name == "" {
		return ""
	}
	return strings.ToUpper(g.Name[:1]) + g.Name[1:]
}

// Config holds the server's group manifest and serving options.
type Config struct {
	DocsDir       string  `json:"docs_dir,omitempty" yaml:"docs_dir"`
	CompleteFile  string  `json:"complete_file,omitempty" yaml:"complete_file"`
	SnippetLength int     `json:"snippet_length" yaml:"snippet_length"`
	Groups        []Group `json:"groups" yaml:"groups"`
}

// Default returns the built-in Rails API manifest. Every default group has
// an embedded seed document, so the server is usable with no configuration
// at all.
func Default() *Config {
	return &Config{
		CompleteFile:  "rails_api.html",
		SnippetLength: 300,
		Groups: []Group{
			{Name: "activerecord", File: "activerecord.html", Title: "Active Record"},
			{Name: "actioncontroller", File: "actioncontroller.html", Title: "Action Controller"},
			{Name: "actionview", File: "actionview.html", Title: "Action View"},
			{Name: "activesupport", File: "activesupport.html", Title: "Active Support"},
			{Name: "actionpack", File: "actionpack.html", Title: "Action Pack"},
			{Name: "activemodel", File: "activemodel.html", Title: "Active Model"},
			{Name: "activejob", File: "activejob.html", Title: "Active Job"},
			{Name: "actionmailer", File: "actionmailer.html", Title: "Action Mailer"},
			{Name: "actioncable", File: "actioncable.html", Title: "Action Cable"},
			{Name: "railties", File: "railties.html", Title: "Railties"},
		},
	}
}

// Load resolves the effective configuration: defaults first, then the
// optional YAML manifest (explicit path or EnvConfig), then environment
// overrides, validated before returning.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if dir := os.Getenv(EnvDocsDir); dir != "" {
		cfg.DocsDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against the embedded JSON Schema and
// the semantic rules the schema cannot express.
func (c *Config) Validate() error {
	if err := c.validateSchema(); err != nil {
		return err
	}

	var errs []error
	seen := make(map[string]bool)
	for i, g := range c.Groups {
		if g.Name == ReservedGroup {
			errs = append(errs, fmt.Errorf("groups[%d]: name %q is reserved for the complete document", i, ReservedGroup))
		}
		if seen[g.Name] {
			errs = append(errs, fmt.Errorf("groups[%d]: duplicate group name %q", i, g.Name))
		}
		seen[g.Name] = true
	}
	return errors.Join(errs...)
}

// validateSchema round-trips the effective configuration through JSON and
// checks it against the embedded schema.
func (c *Config) validateSchema() error {
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	var instance interface{}
	if err := json.Unmarshal(doc, &instance); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	var schemaDoc interface{}
	if err := json.Unmarshal(schemaBytes, &schemaDoc); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config-schema.json", schemaDoc); err != nil {
		return fmt.Errorf("load embedded schema: %w", err)
	}
	schema, err := compiler.Compile("config-schema.json")
	if err != nil {
		return fmt.Errorf("compile embedded schema: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("invalid configuration: %s", strings.Join(schemaViolations(validationErr), "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// schemaViolations flattens a validation error tree into readable messages
// with JSON paths.
func schemaViolations(validationErr *jsonschema.ValidationError) []string {
	var out []string

	path := "$"
	if len(validationErr.InstanceLocation) > 0 {
		path = "$." + strings.Join(validationErr.InstanceLocation, ".")
	}
	if len(validationErr.Causes) == 0 {
		out = append(out, fmt.Sprintf("%s: %s", path, validationErr.Error()))
	}

	for _, cause := range validationErr.Causes {
		out = append(out, schemaViolations(cause)...)
	}
	return out
}
