// Package domain implements the calendrical and astronomical core:
// Julian Day conversion, the arithmetic Hijri calendar, solar position,
// the prayer time pipeline and the Qiblah bearing. Everything in this
// package is a pure function over immutable values, so all of it is
// safe to call concurrently.
package domain

import (
	"fmt"
	"math"
)

// JulianDay is a continuous day count since the Julian epoch. The
// fractional part encodes time of day; a civil date maps to the
// half-integer value at its midnight (2000-01-01 is 2451544.5).
type JulianDay float64

// GregorianDate is a day in the proleptic Gregorian calendar.
type GregorianDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewGregorianDate validates the triple and builds a GregorianDate.
func NewGregorianDate(year, month, day int) (GregorianDate, error) {
	if month < 1 || month > 12 {
		return GregorianDate{}, fmt.Errorf("%w: month %d not in 1..12", ErrRange, month)
	}
	if day < 1 || day > daysInGregorianMonth(year, month) {
		return GregorianDate{}, fmt.Errorf("%w: day %d not valid for %04d-%02d", ErrRange, day, year, month)
	}
	return GregorianDate{Year: year, Month: month, Day: day}, nil
}

func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func isGregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInGregorianMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isGregorianLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// GregorianToJulian converts a civil date to the Julian Day of its
// midnight. Total over any syntactically valid date.
func GregorianToJulian(d GregorianDate) JulianDay {
	year := d.Year
	month := d.Month
	if month <= 2 {
		month += 12
		year--
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return JulianDay(1720994.5 +
		math.Floor(365.25*float64(year)) +
		math.Floor(30.6001*float64(month+1)) +
		b + float64(d.Day))
}

// JulianToGregorian inverts GregorianToJulian. Any instant within a
// civil day maps to that day, so for every valid date d,
// JulianToGregorian(GregorianToJulian(d)) == d.
func JulianToGregorian(jd JulianDay) GregorianDate {
	z := math.Floor(float64(jd) + 0.5)
	var a float64
	if z < 2299161 {
		a = z
	} else {
		aa := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + aa - math.Floor(aa/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	days := math.Floor(365.25 * c)
	e := math.Floor((b - days) / 30.6001)

	day := int(b - days - math.Floor(30.6001*e))
	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year := int(c) - 4716
	if month <= 2 {
		year = int(c) - 4715
	}
	return GregorianDate{Year: year, Month: month, Day: day}
}
