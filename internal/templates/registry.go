// Package templates provides the visual resume templates. Each template turns
// a resume into a rendered tree; exporters never depend on which one did.
package templates

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultID is the template selected when none is given
const DefaultID = "corporate"

// ErrUnknownTemplate is returned for template ids with no registered renderer
var ErrUnknownTemplate = errors.New("unknown template")

// Renderer turns resume data into a rendered tree
type Renderer interface {
	ID() string
	Name() string
	Description() string
	Render(data *types.ResumeData) *document.Node
}

// Info describes a registered template
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry holds renderers by id
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry with the given renderers
func NewRegistry(renderers ...Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer, len(renderers))}
	for _, rd := range renderers {
		r.renderers[rd.ID()] = rd
	}
	return r
}

// Builtin returns a registry of every built-in template
func Builtin() *Registry {
	return NewRegistry(
		corporate{},
		modernTech{},
		minimalist{},
		creativePortfolio{},
		elegantSidebar{},
		creativeInfographic{},
		valeraClassic{},
	)
}

// Get returns the renderer with the given id
func (r *Registry) Get(id string) (Renderer, error) {
	rd, ok := r.renderers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return rd, nil
}

// List returns every registered template sorted by id
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.renderers))
	for _, rd := range r.renderers {
		out = append(out, Info{ID: rd.ID(), Name: rd.Name(), Description: rd.Description()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Render renders data with the template id
func (r *Registry) Render(id string, data *types.ResumeData) (*document.Node, error) {
	rd, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	return rd.Render(data), nil
}
