package domain

import (
	"sort"
	"sync"

	apperrors "github.com/allisson/jsondocs/internal/errors"
)

// ErrContentTypeNotFound indicates no content type is registered under the requested name.
var ErrContentTypeNotFound = apperrors.Wrap(apperrors.ErrNotFound, "content type not found")

// ErrInvalidContentType indicates registration arguments without a name or REST base.
var ErrInvalidContentType = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid content type")

// Registry holds the registered content types, keyed by name.
type Registry struct {
	mu    sync.RWMutex
	types map[string]ContentType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]ContentType)}
}

// Register applies the filters in order to the provider's arguments and stores the result.
// Registering a name again replaces the previous definition.
func (r *Registry) Register(provider Provider, filters ...ArgsFilter) (ContentType, error) {
	args := provider.ContentTypeArgs()
	for _, filter := range filters {
		if filter != nil {
			args = filter(args)
		}
	}

	if args.Name == "" {
		return ContentType{}, ErrInvalidContentType
	}
	if args.ShowInREST && args.RESTBase == "" {
		args.RESTBase = args.Name
	}

	ct := ContentType{Args: args}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[args.Name] = ct

	return ct, nil
}

// Get returns the content type registered under name.
func (r *Registry) Get(name string) (ContentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ct, ok := r.types[name]
	if !ok {
		return ContentType{}, ErrContentTypeNotFound
	}
	return ct, nil
}

// List returns every registered content type sorted by name.
func (r *Registry) List() []ContentType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]ContentType, 0, len(r.types))
	for _, ct := range r.types {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types
}

// RESTTypes returns the content types exposed over REST.
func (r *Registry) RESTTypes() []ContentType {
	var types []ContentType
	for _, ct := range r.List() {
		if ct.ShowInREST {
			types = append(types, ct)
		}
	}
	return types
}

// MenuItems returns the content types shown in the admin menu, ordered by menu position.
func (r *Registry) MenuItems() []ContentType {
	var items []ContentType
	for _, ct := range r.List() {
		if ct.ShowUI && ct.ShowInMenu {
			items = append(items, ct)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MenuPosition < items[j].MenuPosition
	})
	return items
}
