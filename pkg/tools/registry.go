package tools

import (
	"sort"
	"sync"

	"github.com/XiaoConstantine/agentic-go/pkg/errors"
)

// Registry provides a thread-safe in-memory name to tool mapping.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a new, empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
// It returns an error if a tool with the same name already exists.
func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tool == nil {
		return errors.New(errors.InvalidInput, "cannot register a nil tool")
	}

	name := tool.Name()
	if _, exists := r.tools[name]; exists {
		return errors.WithFields(errors.New(errors.InvalidInput, "tool already registered"), errors.Fields{
			"tool_name": name,
		})
	}

	r.tools[name] = tool
	return nil
}

// Get retrieves a tool by its name.
// It returns an error if the tool is not found.
func (r *Registry) Get(name string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	if !exists {
		return nil, errors.WithFields(errors.New(errors.ToolNotFound, "tool not found"), errors.Fields{
			"tool_name": name,
		})
	}
	return tool, nil
}

// Has reports whether a tool with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.tools[name]
	return exists
}

// Names returns the sorted names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns a slice of all registered tools ordered by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]Tool, 0, len(names))
	for _, name := range names {
		list = append(list, r.tools[name])
	}
	return list
}
