package domain

// FixedOffset specifies Isha as a fixed interval after Maghrib instead
// of a depression angle, with a distinct interval during Ramadan.
type FixedOffset struct {
	AllYearMin float64 `json:"all_year_min"`
	RamadanMin float64 `json:"ramadan_min"`
}

// AllYearHours returns the regular interval in decimal hours.
func (f FixedOffset) AllYearHours() float64 { return f.AllYearMin / 60 }

// RamadanHours returns the Ramadan interval in decimal hours.
func (f FixedOffset) RamadanHours() float64 { return f.RamadanMin / 60 }

// Method holds the Fajr and Isha parameters of a calculation method.
// A non-nil IshaOffset selects the fixed-interval rule and IshaAngle
// is ignored; otherwise Isha uses the depression angle. Organizations
// and Applicability are descriptive registry data, not engine inputs.
type Method struct {
	ID            int
	Organizations []string
	FajrAngle     float64
	IshaAngle     float64
	IshaOffset    *FixedOffset
	Applicability []string
}
