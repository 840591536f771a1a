package bodies

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if r.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", r.Len())
	}
	if sun := r.At(0); sun.Name != "Sun" || sun.OrbitalRadius != 0 || sun.OrbitalSpeed != 0 {
		t.Fatalf("index 0 = %+v, want the Sun at the origin", sun)
	}
	moon := r.At(4)
	if moon.Name != "Moon" || moon.ParentIndex != 3 || !moon.IsSatellite() {
		t.Fatalf("Moon = %+v, want satellite of index 3", moon)
	}
	if got := r.Satellites(3); len(got) != 1 || got[0] != 4 {
		t.Fatalf("Satellites(3) = %v, want [4]", got)
	}
	for i := 1; i < r.Len(); i++ {
		if i == 4 {
			continue
		}
		if b := r.At(i); b.ParentIndex != -1 {
			t.Errorf("%s ParentIndex = %d, want -1", b.Name, b.ParentIndex)
		}
	}
	if !r.At(7).HasRing || r.At(7).RingTexture == "" {
		t.Fatalf("Saturn should carry a ring texture")
	}
}

func TestParentName(t *testing.T) {
	r := Default()
	tests := []struct {
		i    int
		want string
	}{
		{0, ""},
		{1, "Sun"},
		{3, "Sun"},
		{4, "Earth"},
		{9, "Sun"},
	}
	for _, tt := range tests {
		if got := r.ParentName(tt.i); got != tt.want {
			t.Errorf("ParentName(%d) [%s] = %q, want %q", tt.i, r.At(tt.i).Name, got, tt.want)
		}
	}
}

func TestBodiesReturnsCopy(t *testing.T) {
	r := Default()
	list := r.Bodies()
	list[1].Name = "Vulcan"
	if r.At(1).Name != "Mercury" {
		t.Fatalf("mutating Bodies() result changed the registry")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	sun := Body{Name: "Sun", Radius: 5}
	planet := Body{Name: "P", OrbitalRadius: 10, Radius: 1}
	tests := []struct {
		name string
		list []Body
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"orbiting star", []Body{{Name: "Sun", OrbitalRadius: 3, Radius: 5}}, ErrNoStar},
		{"duplicate", []Body{sun, planet, planet}, ErrDuplicateName},
		{"zero radius", []Body{sun, {Name: "Z", OrbitalRadius: 4}}, ErrInvalidMeasure},
		{"negative distance", []Body{sun, {Name: "N", OrbitalRadius: -1, Radius: 1}}, ErrInvalidMeasure},
		{"unknown parent", []Body{sun, {Name: "M", OrbitalRadius: 1, Radius: 1, Parent: "X"}}, ErrUnknownParent},
		{"forward parent", []Body{sun, {Name: "M", OrbitalRadius: 1, Radius: 1, Parent: "P"}, planet}, ErrUnknownParent},
		{"nested", []Body{sun, planet,
			{Name: "M", OrbitalRadius: 1, Radius: 0.2, Parent: "P"},
			{Name: "MM", OrbitalRadius: 0.5, Radius: 0.1, Parent: "M"}}, ErrNestedParent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.list)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMultipleSatellites(t *testing.T) {
	r, err := New([]Body{
		{Name: "Sun", Radius: 5},
		{Name: "Mars", OrbitalRadius: 20, Radius: 1.3},
		{Name: "Phobos", OrbitalRadius: 1.5, Radius: 0.2, Parent: "Mars"},
		{Name: "Deimos", OrbitalRadius: 2.5, Radius: 0.15, Parent: "Mars"},
		{Name: "Jupiter", OrbitalRadius: 28, Radius: 2.5, Parent: "Sun"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := r.Satellites(1); len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Fatalf("Satellites(1) = %v, want [2 3]", got)
	}
	if r.At(4).ParentIndex != -1 {
		t.Fatalf("naming the star as parent should keep the body a primary")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bodies.yaml")
	data := `bodies:
  - name: Sun
    radius: 4
    texture: sun.jpg
  - name: Earth
    orbital_radius: 10
    orbital_speed: 3
    spin_speed: 1
    radius: 1
    texture: earth.jpg
  - name: Moon
    orbital_radius: 1.5
    orbital_speed: 40
    radius: 0.3
    parent: Earth
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if r.Len() != 3 || r.At(2).ParentIndex != 1 || r.At(1).OrbitalSpeed != 3 {
		t.Fatalf("unexpected registry: %+v", r.Bodies())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}
