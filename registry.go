package solarsystem

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown by presenters when nothing is selected.
const Placeholder = "Click a body to see its details"

// BodyRecord is the descriptive data shown for a selected body. Every numeric
// attribute is optional.
type BodyRecord struct {
	Name        string
	Description string
	Narrative   string

	Diameter       *float64 // km
	Distance       *float64 // million km from the sun
	OrbitalPeriod  *float64 // earth days
	RotationPeriod *float64 // earth days, negative is retrograde
	SurfaceTemp    *float64 // kelvin
}

var printer = message.NewPrinter(language.English)

// number groups thousands and drops trailing fractional zeros.
func number(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return printer.Sprintf("%d", int64(v))
	}
	s := printer.Sprintf("%.2f", v)
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}

// Lines renders the record as display lines, skipping absent attributes.
func (r *BodyRecord) Lines() []string {
	if r == nil {
		return []string{Placeholder}
	}
	lines := []string{r.Name, r.Description}
	if r.Diameter != nil {
		lines = append(lines, "Diameter: "+number(*r.Diameter)+" km")
	}
	if r.Distance != nil {
		lines = append(lines, "Distance from sun: "+number(*r.Distance)+" million km")
	}
	if r.OrbitalPeriod != nil {
		lines = append(lines, "Orbital period: "+number(*r.OrbitalPeriod)+" earth days")
	}
	if r.RotationPeriod != nil {
		dir := "prograde"
		if *r.RotationPeriod < 0 {
			dir = "retrograde"
		}
		lines = append(lines, "Rotation period: "+number(math.Abs(*r.RotationPeriod))+" earth days ("+dir+")")
	}
	if r.SurfaceTemp != nil {
		lines = append(lines, "Surface temperature: "+number(*r.SurfaceTemp)+" K")
	}
	if r.Narrative != "" {
		lines = append(lines, r.Narrative)
	}
	return lines
}

// Registry maps body ids to records. It is read only after construction.
type Registry struct {
	records map[string]BodyRecord
}

func NewRegistry(records map[string]BodyRecord) *Registry {
	r := &Registry{records: make(map[string]BodyRecord, len(records))}
	for id, rec := range records {
		r.records[id] = rec
	}
	return r
}

// Get returns a copy of the record for id.
func (r *Registry) Get(id string) (*BodyRecord, bool) {
	if r == nil {
		return nil, false
	}
	rec, ok := r.records[id]
	if !ok {
		return nil, false
	}
	return &rec, true
}

// IDs returns the known ids sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func f(v float64) *float64 { return &v }

// DefaultRegistry holds the records for the default scene.
func DefaultRegistry() *Registry {
	return NewRegistry(map[string]BodyRecord{
		"sun": {
			Name:           "Sun",
			Description:    "The star at the centre of the solar system, a G-type main sequence star.",
			Narrative:      "The sun holds 99.86% of the mass of the solar system and is mostly hydrogen (about 73%) and helium (about 25%). Fusion in its core provides the light and heat life on earth depends on.",
			Diameter:       f(1392700),
			RotationPeriod: f(25.05),
			SurfaceTemp:    f(5778),
		},
		"mercury": {
			Name:           "Mercury",
			Description:    "The smallest planet and the closest to the sun.",
			Narrative:      "Mercury has no real atmosphere. Its cratered surface swings from 430°C in daytime to -180°C at night.",
			Diameter:       f(4879),
			Distance:       f(57.9),
			OrbitalPeriod:  f(88),
			RotationPeriod: f(58.65),
		},
		"venus": {
			Name:           "Venus",
			Description:    "The second planet, known as the morning or evening star.",
			Narrative:      "A thick carbon dioxide atmosphere drives a runaway greenhouse effect. At 465°C its surface is the hottest in the solar system.",
			Diameter:       f(12104),
			Distance:       f(108.2),
			OrbitalPeriod:  f(225),
			RotationPeriod: f(-243),
		},
		"earth": {
			Name:           "Earth",
			Description:    "The third planet and the only body known to harbour life.",
			Narrative:      "Earth's atmosphere, liquid water and magnetic field make it habitable. It has one comparatively large satellite, the moon.",
			Diameter:       f(12742),
			Distance:       f(149.6),
			OrbitalPeriod:  f(365.25),
			RotationPeriod: f(1),
		},
		"moon": {
			Name:           "Moon",
			Description:    "Earth's only natural satellite.",
			Narrative:      "The moon is tidally locked, always showing the same face to the earth.",
			Diameter:       f(3474.8),
			OrbitalPeriod:  f(27.3),
			RotationPeriod: f(27.3),
		},
		"mars": {
			Name:           "Mars",
			Description:    "The fourth planet, the red planet.",
			Narrative:      "Mars hosts Olympus Mons, the largest volcano in the solar system, and the Valles Marineris canyon. There is evidence it once had liquid water.",
			Diameter:       f(6779),
			Distance:       f(227.9),
			OrbitalPeriod:  f(687),
			RotationPeriod: f(1.03),
		},
		"jupiter": {
			Name:           "Jupiter",
			Description:    "The largest planet, a gas giant.",
			Narrative:      "Jupiter is mostly hydrogen and helium. Its Great Red Spot is a giant storm and it has 79 known moons.",
			Diameter:       f(139820),
			Distance:       f(778.5),
			OrbitalPeriod:  f(4333),
			RotationPeriod: f(0.41),
		},
		"saturn": {
			Name:           "Saturn",
			Description:    "The second largest planet, famous for its rings.",
			Narrative:      "The rings are mostly ice and rock, span 282,000 km and are only a few hundred metres thick. Saturn has 82 known moons.",
			Diameter:       f(116460),
			Distance:       f(1434),
			OrbitalPeriod:  f(10759),
			RotationPeriod: f(0.45),
		},
		"uranus": {
			Name:           "Uranus",
			Description:    "The seventh planet, an ice giant.",
			Narrative:      "Uranus rotates on its side with its axis almost in its orbital plane. It has 27 known moons.",
			Diameter:       f(50724),
			Distance:       f(2871),
			OrbitalPeriod:  f(30687),
			RotationPeriod: f(-0.72),
		},
		"neptune": {
			Name:           "Neptune",
			Description:    "The outermost planet, another ice giant.",
			Narrative:      "Neptune has the fastest winds in the solar system at up to 2,100 km/h. Triton is the largest of its 14 known moons.",
			Diameter:       f(49244),
			Distance:       f(4495),
			OrbitalPeriod:  f(60190),
			RotationPeriod: f(0.67),
		},
		"blackhole": {
			Name:        "Black hole",
			Description: "A theoretical model of an object whose gravity not even light escapes.",
			Narrative:   "Nothing returns from beyond the event horizon. The accretion disk is matter spiralling in and radiating strongly before it falls.",
		},
	})
}
