package bodies

// Body describes one celestial body. Distances and radii are in scene units; speeds are
// multiplied by the orbit package's scale constants. Texture and RingTexture are file names
// relative to the textures directory.
type Body struct {
	Name                string  `yaml:"name"`
	OrbitalRadius       float32 `yaml:"orbital_radius"`
	OrbitalSpeed        float32 `yaml:"orbital_speed"`
	SpinSpeed           float32 `yaml:"spin_speed"`
	Radius              float32 `yaml:"radius"`
	Texture             string  `yaml:"texture"`
	HasRing             bool    `yaml:"has_ring,omitempty"`
	RingTexture         string  `yaml:"ring_texture,omitempty"`
	ShortFact           string  `yaml:"short_fact"`
	DetailedInfo        string  `yaml:"detailed_info"`
	OrbitalPeriodDays   float32 `yaml:"orbital_period_days"`
	RotationPeriodHours float32 `yaml:"rotation_period_hours"`
	// Parent is the name of the body this one orbits. Empty means the central star.
	Parent string `yaml:"parent,omitempty"`
	// Color is a #RRGGBB tint used when the texture is missing.
	Color string `yaml:"color,omitempty"`

	// ParentIndex is resolved by the registry: -1 for the star and for bodies orbiting it.
	ParentIndex int `yaml:"-"`
}

// IsSatellite reports whether the body orbits something other than the star.
func (b Body) IsSatellite() bool {
	return b.ParentIndex > 0
}

// StarfieldTexture is the background texture file name.
const StarfieldTexture = "stars.jpg"

// Defaults returns the built-in ten-body configuration. Index 0 is the Sun; the Moon orbits Earth.
func Defaults() []Body {
	return []Body{
		{Name: "Sun", Radius: 5.0, Texture: "sun.jpg", Color: "#FDB813",
			ShortFact: "Star at the center.", DetailedInfo: "The Sun is a G-type main-sequence star."},
		{Name: "Mercury", OrbitalRadius: 8, OrbitalSpeed: 10, SpinSpeed: 1.0, Radius: 0.8, Texture: "mercury.jpg", Color: "#B5B5B5",
			ShortFact: "Closest planet.", DetailedInfo: "Smallest planet in solar system.", OrbitalPeriodDays: 88, RotationPeriodHours: 1407},
		{Name: "Venus", OrbitalRadius: 12, OrbitalSpeed: 8, SpinSpeed: 0.8, Radius: 1.2, Texture: "venus.jpg", Color: "#E8CDA2",
			ShortFact: "Second planet.", DetailedInfo: "Hot planet with thick atmosphere.", OrbitalPeriodDays: 225, RotationPeriodHours: 5832},
		{Name: "Earth", OrbitalRadius: 16, OrbitalSpeed: 5, SpinSpeed: 2.0, Radius: 1.5, Texture: "earth.jpg", Color: "#2E86AB",
			ShortFact: "Our home planet.", DetailedInfo: "Third planet from Sun.", OrbitalPeriodDays: 365, RotationPeriodHours: 24},
		{Name: "Moon", OrbitalRadius: 2, OrbitalSpeed: 50, SpinSpeed: 5.0, Radius: 0.5, Texture: "moon.jpg", Color: "#C8C8C8", Parent: "Earth",
			ShortFact: "Earth's Moon.", DetailedInfo: "Natural satellite of Earth.", OrbitalPeriodDays: 27.3, RotationPeriodHours: 655},
		{Name: "Mars", OrbitalRadius: 20, OrbitalSpeed: 4, SpinSpeed: 1.5, Radius: 1.3, Texture: "mars.jpg", Color: "#C1440E",
			ShortFact: "Red planet.", DetailedInfo: "Fourth planet from Sun.", OrbitalPeriodDays: 687, RotationPeriodHours: 24.6},
		{Name: "Jupiter", OrbitalRadius: 28, OrbitalSpeed: 2, SpinSpeed: 2.5, Radius: 2.5, Texture: "jupiter.jpg", Color: "#C88B3A",
			ShortFact: "Largest planet.", DetailedInfo: "Fifth planet from Sun.", OrbitalPeriodDays: 4333, RotationPeriodHours: 9.9},
		{Name: "Saturn", OrbitalRadius: 36, OrbitalSpeed: 1.5, SpinSpeed: 2.0, Radius: 2.0, Texture: "saturn.jpg", Color: "#E4D191",
			HasRing: true, RingTexture: "saturn_ring.jpg",
			ShortFact: "Has rings.", DetailedInfo: "Sixth planet from Sun.", OrbitalPeriodDays: 10759, RotationPeriodHours: 10.7},
		{Name: "Uranus", OrbitalRadius: 44, OrbitalSpeed: 1.0, SpinSpeed: 1.5, Radius: 1.7, Texture: "uranus.jpg", Color: "#7DE8E8",
			ShortFact: "Ice giant.", DetailedInfo: "Seventh planet from Sun.", OrbitalPeriodDays: 30687, RotationPeriodHours: 17.2},
		{Name: "Neptune", OrbitalRadius: 52, OrbitalSpeed: 0.8, SpinSpeed: 1.5, Radius: 1.6, Texture: "neptune.jpg", Color: "#4B70DD",
			ShortFact: "Ice giant.", DetailedInfo: "Eighth planet from Sun.", OrbitalPeriodDays: 60190, RotationPeriodHours: 16.1},
	}
}
