// Package ingest loads traffic event documents from disk for the CLI
// wrapper. Files are discovered by glob pattern, decoded from JSON or YAML,
// and gated through a CUE schema so structurally bogus files fail fast
// before scoring. The engine itself never touches the filesystem.
package ingest

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/trafficlab/feedscore/internal/types"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// envelope is the {"events": [...]} document form.
type envelope struct {
	Events []types.TrafficEvent `json:"events" yaml:"events"`
}

// Loader discovers and decodes event documents.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader compiles the embedded document schema. A schema that fails to
// compile is a build defect, reported as an error.
func NewLoader() (*Loader, error) {
	content, err := schemaFS.ReadFile("schemas/event.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("event.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling event schema: %w", err)
	}
	schema := inst.LookupPath(cue.ParsePath("#Document"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("event schema missing #Document: %w", err)
	}
	return &Loader{ctx: ctx, schema: schema}, nil
}

// LoadGlobs loads events from every file under root matched by any of the
// doublestar patterns, in sorted path order.
func (l *Loader) LoadGlobs(root string, patterns []string) ([]types.TrafficEvent, error) {
	seen := map[string]bool{}
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(root), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(root, m)
			if !seen[full] {
				seen[full] = true
				paths = append(paths, full)
			}
		}
	}
	sort.Strings(paths)

	var events []types.TrafficEvent
	for _, path := range paths {
		fileEvents, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		events = append(events, fileEvents...)
	}
	return events, nil
}

// LoadFile decodes one event document. YAML is selected by extension;
// everything else is parsed as JSON. The document may be a bare event array
// or an {"events": [...]} envelope.
func (l *Loader) LoadFile(path string) ([]types.TrafficEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	isYAML := false
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		isYAML = true
	}

	var doc any
	if isYAML {
		err = yaml.Unmarshal(data, &doc)
	} else {
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := l.validateDocument(path, doc); err != nil {
		return nil, err
	}
	return decodeEvents(path, data, isYAML)
}

// validateDocument unifies the decoded document with the embedded schema.
func (l *Loader) validateDocument(path string, doc any) error {
	value := l.ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%s: encoding document: %w", path, err)
	}
	unified := l.schema.Unify(value)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("%s: not an event document: %w", path, err)
	}
	return nil
}

func decodeEvents(path string, data []byte, isYAML bool) ([]types.TrafficEvent, error) {
	unmarshal := json.Unmarshal
	if isYAML {
		unmarshal = yaml.Unmarshal
	}

	var events []types.TrafficEvent
	if err := unmarshal(data, &events); err == nil {
		return events, nil
	}
	var env envelope
	if err := unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding events from %s: %w", path, err)
	}
	return env.Events, nil
}
