package tl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/rs/zerolog/log"
)

var (
	ErrDuplicateConstructor = errors.New("tl: duplicate constructor tag")
	ErrTrailingData         = errors.New("tl: trailing data after object")
	ErrCorruptPacked        = errors.New("tl: corrupt gzip_packed payload")
	ErrNilObject            = errors.New("tl: nil object")
	ErrFlagConflict         = errors.New("tl: fields sharing a flag bit disagree on presence")
)

// DecodeFunc decodes a constructor body. The tag has already been consumed.
type DecodeFunc func(c *bin.Cursor) (Object, error)

// Constructor binds a tag to the bare decoder of its concrete type.
type Constructor struct {
	Tag    uint32
	Name   string
	Base   string
	Decode DecodeFunc
}

// Observer receives the outcome of every envelope decode. size is the number
// of bytes the envelope consumed, name is empty for unresolved tags.
type Observer interface {
	ObserveDecode(name string, size int, err error)
}

// Registry maps tags of one schema layer to decoders. It is built once and
// only read afterwards, so concurrent decodes share it without locking.
type Registry struct {
	layer    int
	byTag    map[uint32]Constructor
	observer Observer
}

// NewRegistry builds the registry for layer from the built-in constructors
// plus every constructor in sets.
func NewRegistry(layer int, sets ...[]Constructor) (*Registry, error) {
	r := &Registry{layer: layer, byTag: make(map[uint32]Constructor)}
	all := append([][]Constructor{builtins()}, sets...)
	for _, set := range all {
		for _, ctor := range set {
			if err := r.add(ctor); err != nil {
				return nil, err
			}
		}
	}
	log.Debug().Int("layer", layer).Int("constructors", len(r.byTag)).Msg("tl registry built")
	return r, nil
}

// MustRegistry is NewRegistry for static schema data; a duplicate tag is a
// programming error and panics.
func MustRegistry(layer int, sets ...[]Constructor) *Registry {
	r, err := NewRegistry(layer, sets...)
	if err != nil {
		panic(err)
	}
	return r
}

// Extend returns a new registry for layer holding r's constructors plus sets.
// r itself is left untouched, so decodes running against it are unaffected.
func (r *Registry) Extend(layer int, sets ...[]Constructor) (*Registry, error) {
	next := &Registry{layer: layer, byTag: make(map[uint32]Constructor, len(r.byTag)), observer: r.observer}
	for tag, ctor := range r.byTag {
		next.byTag[tag] = ctor
	}
	for _, set := range sets {
		for _, ctor := range set {
			if err := next.add(ctor); err != nil {
				return nil, err
			}
		}
	}
	log.Debug().Int("layer", layer).Int("constructors", len(next.byTag)).Msg("tl registry extended")
	return next, nil
}

func (r *Registry) add(ctor Constructor) error {
	if ctor.Decode == nil {
		return fmt.Errorf("tl: constructor %s#%08x has no decoder", ctor.Name, ctor.Tag)
	}
	if prev, ok := r.byTag[ctor.Tag]; ok {
		return fmt.Errorf("%w: 0x%08x (%s, %s)", ErrDuplicateConstructor, ctor.Tag, prev.Name, ctor.Name)
	}
	r.byTag[ctor.Tag] = ctor
	return nil
}

// WithObserver returns a registry sharing r's table that reports decodes to o.
func (r *Registry) WithObserver(o Observer) *Registry {
	return &Registry{layer: r.layer, byTag: r.byTag, observer: o}
}

func (r *Registry) Layer() int { return r.layer }

func (r *Registry) Len() int { return len(r.byTag) }

// Resolve returns the constructor registered for tag.
func (r *Registry) Resolve(tag uint32) (Constructor, bool) {
	ctor, ok := r.byTag[tag]
	return ctor, ok
}

// Name returns the constructor name for tag, or "" if it is unknown.
func (r *Registry) Name(tag uint32) string {
	return r.byTag[tag].Name
}

// Constructors returns every constructor ordered by base type then name.
func (r *Registry) Constructors() []Constructor {
	list := make([]Constructor, 0, len(r.byTag))
	for _, ctor := range r.byTag {
		list = append(list, ctor)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Base != list[j].Base {
			return list[i].Base < list[j].Base
		}
		return list[i].Name < list[j].Name
	})
	return list
}
