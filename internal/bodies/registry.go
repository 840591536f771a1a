package bodies

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmpty          = errors.New("registry is empty")
	ErrNoStar         = errors.New("first body must be the central star")
	ErrDuplicateName  = errors.New("duplicate body name")
	ErrUnknownParent  = errors.New("parent must name an earlier body")
	ErrNestedParent   = errors.New("satellites cannot have satellites")
	ErrInvalidMeasure = errors.New("radius must be > 0 and orbital radius >= 0")
)

// Registry is the ordered, read-only list of bodies. Build it once with New or Load.
type Registry struct {
	bodies     []Body
	satellites [][]int // satellites[i] lists indices orbiting body i, in registry order
}

// New validates list, resolves parents and returns the registry. list is copied.
func New(list []Body) (*Registry, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	bs := make([]Body, len(list))
	copy(bs, list)

	star := bs[0]
	if star.OrbitalRadius != 0 || star.OrbitalSpeed != 0 || star.Parent != "" {
		return nil, fmt.Errorf("bodies: %q: %w", star.Name, ErrNoStar)
	}

	index := make(map[string]int, len(bs))
	sats := make([][]int, len(bs))
	for i := range bs {
		b := &bs[i]
		if b.Name == "" {
			return nil, fmt.Errorf("bodies: body %d has no name", i)
		}
		if _, dup := index[b.Name]; dup {
			return nil, fmt.Errorf("bodies: %q: %w", b.Name, ErrDuplicateName)
		}
		if b.Radius <= 0 || b.OrbitalRadius < 0 {
			return nil, fmt.Errorf("bodies: %q: %w", b.Name, ErrInvalidMeasure)
		}
		b.ParentIndex = -1
		if b.Parent != "" && b.Parent != star.Name {
			p, ok := index[b.Parent]
			if !ok {
				return nil, fmt.Errorf("bodies: %q orbits %q: %w", b.Name, b.Parent, ErrUnknownParent)
			}
			if bs[p].ParentIndex > 0 {
				return nil, fmt.Errorf("bodies: %q orbits %q: %w", b.Name, b.Parent, ErrNestedParent)
			}
			b.ParentIndex = p
			sats[p] = append(sats[p], i)
		}
		index[b.Name] = i
	}
	return &Registry{bodies: bs, satellites: sats}, nil
}

// Default returns the registry built from Defaults.
func Default() *Registry {
	r, err := New(Defaults())
	if err != nil {
		panic("bodies: built-in registry invalid: " + err.Error())
	}
	return r
}

type bodyFile struct {
	Bodies []Body `yaml:"bodies"`
}

// Load reads a YAML file with a top-level "bodies" list and builds a registry from it.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bodies: %w", err)
	}
	var f bodyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bodies: %s: %w", path, err)
	}
	return New(f.Bodies)
}

// Len returns the number of bodies.
func (r *Registry) Len() int {
	return len(r.bodies)
}

// At returns body i. Panics when i is out of range, like a slice index.
func (r *Registry) At(i int) Body {
	return r.bodies[i]
}

// ParentName returns the name of the body that body i orbits: its parent for satellites, the star
// otherwise. The star itself has no parent and gets "".
func (r *Registry) ParentName(i int) string {
	if i == 0 {
		return ""
	}
	if p := r.bodies[i].ParentIndex; p > 0 {
		return r.bodies[p].Name
	}
	return r.bodies[0].Name
}

// Satellites returns the indices of bodies orbiting body i.
func (r *Registry) Satellites(i int) []int {
	return r.satellites[i]
}

// Bodies returns a deep copy of the list so callers cannot change the registry.
func (r *Registry) Bodies() []Body {
	var out []Body
	if err := copier.CopyWithOption(&out, &r.bodies, copier.Option{DeepCopy: true}); err != nil {
		out = make([]Body, len(r.bodies))
		copy(out, r.bodies)
	}
	return out
}
