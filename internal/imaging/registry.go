package imaging

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps image names to images.
//
// Names are unique and the last Put for a name wins. Entries stay until they
// are overwritten, removed with Delete, or dropped by Clear; there is no
// implicit eviction.
//
// Registry is safe for concurrent use. The engine itself never writes to it
// from more than one goroutine; callers that share one registry between
// front ends should still keep writers to the same name serialized.
//
// # Example Usage
//
//	reg := imaging.NewRegistry()
//	reg.Put("koala", img)
//	src, err := reg.Get("koala")
//	if err != nil {
//	    return err
//	}
//	out, err := imaging.Brighten(src, 30)
//	reg.Put("koala-brighter", out)
type Registry struct {
	mu     sync.RWMutex
	images map[string]*Image
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		images: make(map[string]*Image),
	}
}

// Get returns the image stored under name, or an error wrapping ErrNotFound.
func (r *Registry) Get(name string) (*Image, error) {
	r.mu.RLock()
	img, ok := r.images[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("image %q: %w", name, ErrNotFound)
	}
	return img, nil
}

// Put stores img under name, replacing any previous image with that name.
//
// An empty name or nil image is rejected with ErrInvalidParameter.
func (r *Registry) Put(name string, img *Image) error {
	if name == "" {
		return fmt.Errorf("empty image name: %w", ErrInvalidParameter)
	}
	if img == nil {
		return fmt.Errorf("image %q is nil: %w", name, ErrInvalidParameter)
	}
	r.mu.Lock()
	r.images[name] = img
	r.mu.Unlock()
	return nil
}

// Delete removes the image stored under name. It reports whether an image
// was present.
func (r *Registry) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.images[name]
	delete(r.images, name)
	return ok
}

// Clear removes every image from the registry.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.images = make(map[string]*Image)
	r.mu.Unlock()
}

// Names returns the stored names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}
