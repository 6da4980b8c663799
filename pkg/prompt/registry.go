package prompt

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
)

// LoadInfo identifies the most recent successful load of a registry. The
// ID appears in load log lines so registry snapshots can be correlated
// with later renders.
type LoadInfo struct {
	ID    string
	At    time.Time
	Count int
}

// Registry holds the validated templates from the most recent successful
// load, keyed by name. A load replaces the whole set as one step: either
// every record passes validation and the new set is installed, or the
// registry keeps whatever it held before the call.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
	names     []string
	lastLoad  LoadInfo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Template),
	}
}

// Load parses and validates a prompts document and installs its templates,
// replacing any previously loaded set. The first record to fail validation
// aborts the whole load, as does a name already accepted earlier in the
// same document. On any failure the registry is left untouched.
func (r *Registry) Load(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty: %w", ErrInvalidArgument)
	}

	specs, err := decodeDocument(content)
	if err != nil {
		return err
	}

	staged := make(map[string]*Template, len(specs))
	names := make([]string, 0, len(specs))
	for i := range specs {
		spec := &specs[i]
		if err := Validate(spec); err != nil {
			return err
		}
		if _, exists := staged[spec.Name]; exists {
			return &ValidationError{
				Template: spec.Name,
				message:  fmt.Sprintf("duplicate prompt name %q found in document", spec.Name),
			}
		}
		staged[spec.Name] = newTemplate(*spec)
		names = append(names, spec.Name)
	}

	info := LoadInfo{ID: uuid.NewString(), At: time.Now(), Count: len(staged)}

	r.mu.Lock()
	r.templates = staged
	r.names = names
	r.lastLoad = info
	r.mu.Unlock()

	clog.FromContext(ctx).With("load_id", info.ID).Debugf("loaded %d prompt templates", info.Count)
	return nil
}

// LoadFile reads the document at path and loads it. A missing file keeps
// the underlying not-exist error in the chain so callers can match it with
// errors.Is(err, fs.ErrNotExist).
func (r *Registry) LoadFile(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path cannot be empty: %w", ErrInvalidArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read prompts file %s: %w", path, err)
	}

	clog.FromContext(ctx).Debugf("loading prompt templates from %s", path)
	return r.Load(ctx, string(data))
}

// Get returns the named template, or nil when nothing matches. Only an
// empty name is an error; an unknown or whitespace name is an ordinary
// miss.
func (r *Registry) Get(name string) (*Template, error) {
	if name == "" {
		return nil, fmt.Errorf("prompt name cannot be empty: %w", ErrInvalidArgument)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templates[name], nil
}

// GetRequired returns the named template, or a NotFoundError when nothing
// matches.
func (r *Registry) GetRequired(name string) (*Template, error) {
	template, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, &NotFoundError{Name: name}
	}
	return template, nil
}

// Has reports whether a template with the given name is loaded. It never
// fails; empty and unknown names simply report false.
func (r *Registry) Has(name string) bool {
	if name == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.templates[name]
	return ok
}

// Count returns the number of loaded templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Names returns the template names in document order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// All returns every loaded template in document order.
func (r *Registry) All() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*Template, 0, len(r.names))
	for _, name := range r.names {
		templates = append(templates, r.templates[name])
	}
	return templates
}

// Clear removes all loaded templates and forgets the last load.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates = make(map[string]*Template)
	r.names = nil
	r.lastLoad = LoadInfo{}
}

// LastLoad describes the most recent successful load, or the zero value
// when nothing has been loaded.
func (r *Registry) LastLoad() LoadInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastLoad
}
