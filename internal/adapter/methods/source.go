// Package methods provides calculation-method registries for the
// prayer engine: a compiled-in table of the widely used methods and a
// CSV loader for site-specific overrides.
package methods

import (
	"fmt"

	"go.miqat.io/miqat-api/internal/domain"
)

// Source yields a method registry.
type Source interface {
	Load() ([]domain.Method, error)
}

// Builtin serves the compiled-in registry.
type Builtin struct{}

// Load implements Source.
func (Builtin) Load() ([]domain.Method, error) {
	return Registry(), nil
}

// Registry returns a fresh copy of the built-in method table.
func Registry() []domain.Method {
	return []domain.Method{
		{
			ID: 1,
			Organizations: []string{
				"University of Islamic Sciences, Karachi (UISK)",
				"Ministry of Religious Affairs, Tunisia",
				"Grande Mosquée de Paris, France",
			},
			FajrAngle: 18, IshaAngle: 18,
		},
		{
			ID: 2,
			Organizations: []string{
				"Muslim World League (MWL)",
				"Ministry of Religious Affairs and Awqaf, Algeria",
				"Presidency of Religious Affairs, Turkey",
			},
			FajrAngle: 18, IshaAngle: 17,
		},
		{
			ID:            3,
			Organizations: []string{"Egyptian General Authority of Survey (EGAS)"},
			FajrAngle:     19.5, IshaAngle: 17.5,
		},
		{
			ID:            4,
			Organizations: []string{"Umm al-Qura University, Makkah (UMU)"},
			FajrAngle:     18.5,
			IshaOffset:    &domain.FixedOffset{AllYearMin: 90, RamadanMin: 120},
		},
		{
			ID: 5,
			Organizations: []string{
				"Islamic Society of North America (ISNA)",
				"France - Angle 15°",
			},
			FajrAngle: 15, IshaAngle: 15,
		},
		{
			ID:            6,
			Organizations: []string{"French Muslims (ex-UOIF)"},
			FajrAngle:     12, IshaAngle: 12,
		},
		{
			ID: 7,
			Organizations: []string{
				"Islamic Religious Council of Singapore (MUIS)",
				"Department of Islamic Advancement of Malaysia (JAKIM)",
				"Ministry of Religious Affairs of Indonesia (KEMENAG)",
			},
			FajrAngle: 20, IshaAngle: 18,
		},
		{
			ID:            8,
			Organizations: []string{"Spiritual Administration of Muslims of Russia"},
			FajrAngle:     16, IshaAngle: 15,
		},
		{
			ID:            9,
			Organizations: []string{"Fixed Isha Time Interval, 90min"},
			FajrAngle:     19.5,
			IshaOffset:    &domain.FixedOffset{AllYearMin: 90, RamadanMin: 90},
		},
	}
}

// DefaultMethodID selects the Muslim World League parameters, the
// registry's conventional default.
const DefaultMethodID = 2

// Lookup finds a method by ID in a registry.
func Lookup(registry []domain.Method, id int) (domain.Method, error) {
	for _, m := range registry {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Method{}, fmt.Errorf("unknown calculation method %d", id)
}
