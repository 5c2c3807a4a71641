package domain

import (
	"fmt"
	"math"
)

// AsrMadhab selects the shadow-length ratio used for the Asr altitude.
type AsrMadhab int

const (
	// AsrStandard is the Shafi'i, Maliki and Hanbali ratio (shadow
	// equal to the object plus its noon shadow).
	AsrStandard AsrMadhab = 1
	// AsrHanafi doubles the ratio.
	AsrHanafi AsrMadhab = 2
)

// horizonZenith is the zenith distance of the sun's upper limb at
// sunrise and sunset, refraction included. Fixed, not configurable.
const horizonZenith = 90.83333

// Location is an observer position with its civil-time parameters.
type Location struct {
	Longitude  float64 // degrees, east positive
	Latitude   float64 // degrees, north positive
	Timezone   int     // hours offset from UTC
	SummerTime bool
}

// Config is an immutable prayer computation configuration. The derived
// meridian fields are fixed at construction; build a new Config when
// longitude or timezone change.
type Config struct {
	Location  Location
	Method    Method
	AsrMadhab AsrMadhab

	middleLongitude float64 // reference meridian of the timezone
	longitudeDiff   float64 // hours between reference meridian and location
}

// NewConfig builds a Config and precomputes the meridian offsets. Any
// madhab value other than AsrHanafi falls back to AsrStandard.
func NewConfig(loc Location, method Method, madhab AsrMadhab) Config {
	if madhab != AsrHanafi {
		madhab = AsrStandard
	}
	mid := float64(loc.Timezone) * 15
	return Config{
		Location:        loc,
		Method:          method,
		AsrMadhab:       madhab,
		middleLongitude: mid,
		longitudeDiff:   (mid - loc.Longitude) / 15,
	}
}

// TimeSet is the immutable result record of one day's computation: the
// six prayer events and three night divisions as decimal hours before
// wraparound. Night divisions can exceed 24 and polar-region values
// can be NaN when the sun never reaches the requested altitude; Clock
// folds finite values into a wall-clock time of day.
type TimeSet struct {
	Fajr        float64
	Sunrise     float64
	Dhuhr       float64
	Asr         float64
	Maghrib     float64
	Isha        float64
	Midnight    float64
	SecondThird float64
	LastThird   float64

	summerTime bool
}

// ComputeTimes runs the fixed pipeline for one date. Dhuhr comes first
// because every other instant is an hour-angle offset from it, and the
// night divisions come last because they need Maghrib and Fajr.
// correctionDays is consulted only by the Ramadan fixed-offset Isha
// rule and must be in [-2, 2].
func ComputeTimes(cfg Config, date GregorianDate, correctionDays int) (TimeSet, error) {
	if correctionDays < -2 || correctionDays > 2 {
		return TimeSet{}, fmt.Errorf("%w: correction %d not in [-2, 2]", ErrRange, correctionDays)
	}

	jd := GregorianToJulian(date)
	decl := SunDeclination(jd)
	lat := cfg.Location.Latitude

	ts := TimeSet{summerTime: cfg.Location.SummerTime}
	ts.Dhuhr = 12 + cfg.longitudeDiff + EquationOfTime(jd)/60
	ts.Fajr = ts.Dhuhr - HourAngleForAltitude(lat, decl, 90+cfg.Method.FajrAngle)
	ts.Sunrise = ts.Dhuhr - HourAngleForAltitude(lat, decl, horizonZenith)
	ts.Asr = ts.Dhuhr + HourAngleForAltitude(lat, decl, asrZenith(lat, decl, cfg.AsrMadhab))
	ts.Maghrib = ts.Dhuhr + HourAngleForAltitude(lat, decl, horizonZenith)

	if off := cfg.Method.IshaOffset; off != nil {
		hours := off.AllYearHours()
		if HijriFromGregorian(date, correctionDays).Month == Ramadan {
			hours = off.RamadanHours()
		}
		ts.Isha = ts.Maghrib + hours
	} else {
		ts.Isha = ts.Dhuhr + HourAngleForAltitude(lat, decl, 90+cfg.Method.IshaAngle)
	}

	night := 24 - (ts.Maghrib - ts.Fajr)
	ts.Midnight = ts.Maghrib + night/2
	ts.SecondThird = ts.Maghrib + night/3
	ts.LastThird = ts.Maghrib + 2*night/3

	return ts, nil
}

// asrZenith derives the zenith distance of the Asr altitude from the
// shadow-length ratio of the chosen madhab, via the shadow-length
// identity cot(altitude) = ratio + tan(latitude - declination).
func asrZenith(latitude, declination float64, madhab AsrMadhab) float64 {
	x := dsin(latitude)*dsin(declination) + dcos(latitude)*dcos(declination)
	a := math.Atan(x / math.Sqrt(1-x*x))
	x = float64(madhab) + 1/math.Tan(a)
	return 90 - radToDeg(math.Atan(x)+2*math.Atan(1))
}

// TimeOfDay is a wall-clock instant within a civil day.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Clock converts a decimal-hour value to a wall-clock time of day:
// shiftSeconds is added, one hour when summer time is enabled, and the
// result is taken modulo 24 hours. An instant past midnight therefore
// wraps into the next civil day; detecting the rollover is the
// caller's concern.
func (ts TimeSet) Clock(hours, shiftSeconds float64) (TimeOfDay, error) {
	if math.IsNaN(shiftSeconds) || math.IsInf(shiftSeconds, 0) {
		return TimeOfDay{}, fmt.Errorf("%w: got %v", ErrShift, shiftSeconds)
	}

	st := 0.0
	if ts.summerTime {
		st = 1
	}
	h := hours + shiftSeconds/3600
	minutes := (h - math.Floor(h)) * 60
	seconds := (minutes - math.Floor(minutes)) * 60

	hour := int(math.Floor(h+st)) % 24
	if hour < 0 {
		hour += 24
	}
	return TimeOfDay{Hour: hour, Minute: int(math.Floor(minutes)), Second: int(math.Floor(seconds))}, nil
}

// Accessors for the nine instants; shiftSeconds moves the reported
// time without recomputing the day.

func (ts TimeSet) FajrTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Fajr, shiftSeconds)
}

func (ts TimeSet) SunriseTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Sunrise, shiftSeconds)
}

func (ts TimeSet) DhuhrTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Dhuhr, shiftSeconds)
}

func (ts TimeSet) AsrTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Asr, shiftSeconds)
}

func (ts TimeSet) MaghribTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Maghrib, shiftSeconds)
}

func (ts TimeSet) IshaTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Isha, shiftSeconds)
}

func (ts TimeSet) MidnightTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.Midnight, shiftSeconds)
}

func (ts TimeSet) SecondThirdTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.SecondThird, shiftSeconds)
}

func (ts TimeSet) LastThirdTime(shiftSeconds float64) (TimeOfDay, error) {
	return ts.Clock(ts.LastThird, shiftSeconds)
}
