package domain

import (
	"fmt"
	"math"
)

// Ramadan is the ninth Hijri month, the only one the prayer engine
// needs to recognize (fixed-offset Isha methods lengthen the interval
// during it).
const Ramadan = 9

// hijriEpoch places 1 Muharram 1 AH at JD 1948439.5, the midnight of
// Friday 16 July 622 (Julian calendar), the civil epoch of the
// arithmetic calendar.
const hijriEpoch = 1948054.5

var hijriMonthNames = [12]string{
	"Moharram", "Safar", "Rabie-I", "Rabie-II",
	"Jumada-I", "Jumada-II", "Rajab", "Shaban",
	"Ramadan", "Shawwal", "Delqada", "Delhijja",
}

var hijriMonthNamesArabic = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الثاني",
	"جمادى الأولى", "جمادى الثانية", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// HijriDate is a day in the arithmetic (civil) Hijri calendar. The
// equivalent Julian Day is derived when the value is built and cached,
// so the triple and the day count stay consistent for the lifetime of
// the value. HijriDate is immutable; date arithmetic returns new
// values.
type HijriDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`

	jd JulianDay
}

// NewHijriDate validates the triple and builds a HijriDate.
func NewHijriDate(year, month, day int) (HijriDate, error) {
	if year < 0 {
		return HijriDate{}, fmt.Errorf("%w: hijri year %d must not be negative", ErrRange, year)
	}
	if month < 1 || month > 12 {
		return HijriDate{}, fmt.Errorf("%w: hijri month %d not in 1..12", ErrRange, month)
	}
	if day < 1 || day > 30 {
		return HijriDate{}, fmt.Errorf("%w: hijri day %d not in 1..30", ErrRange, day)
	}
	return HijriDate{Year: year, Month: month, Day: day, jd: hijriToJulian(year, month, day)}, nil
}

// hijriToJulian is the closed-form conversion over the 30-year
// arithmetic cycle, returning the Julian Day at the date's midnight.
// No day correction is applied in this direction.
func hijriToJulian(year, month, day int) JulianDay {
	y := float64(year)
	m := float64(month)
	return JulianDay(math.Floor((11*y+3)/30) + 354*y + 30*m -
		math.Floor((m-1)/2) + float64(day) + hijriEpoch)
}

// JulianToHijri derives the Hijri triple for a Julian Day after adding
// correctionDays, the caller's compensation for local moon-sighting
// announcements that differ from the arithmetic calendar. The usual
// range is [-2, 2] but the function itself is total.
func JulianToHijri(jd JulianDay, correctionDays int) (year, month, day int) {
	l := int(math.Floor(float64(jd)+0.5)) + correctionDays - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month = (24 * l) / 709
	day = l - (709*month)/24
	year = 30*n + j - 30
	return year, month, day
}

// HijriFromJulian builds the HijriDate for a Julian Day.
func HijriFromJulian(jd JulianDay, correctionDays int) HijriDate {
	y, m, d := JulianToHijri(jd, correctionDays)
	return HijriDate{Year: y, Month: m, Day: d, jd: hijriToJulian(y, m, d)}
}

// HijriFromGregorian converts a civil date to its Hijri equivalent.
func HijriFromGregorian(d GregorianDate, correctionDays int) HijriDate {
	return HijriFromJulian(GregorianToJulian(d), correctionDays)
}

// ToGregorian converts back to the civil calendar.
func (h HijriDate) ToGregorian() GregorianDate {
	return JulianToGregorian(h.jd)
}

// JulianDay returns the cached day count. It always reflects the
// arithmetic calendar: a correction supplied at construction shifts
// the triple, not the count.
func (h HijriDate) JulianDay() JulianDay {
	return h.jd
}

// NextDay returns the following Hijri day, derived by stepping the
// cached Julian Day.
func (h HijriDate) NextDay() HijriDate {
	return HijriFromJulian(h.jd+1, 0)
}

// IsLastDayOfMonth reports whether the next day falls in a different
// month.
func (h HijriDate) IsLastDayOfMonth() bool {
	return h.Month != h.NextDay().Month
}

// Sub returns the signed number of days between two Hijri dates.
func (h HijriDate) Sub(o HijriDate) int {
	return int(h.jd - o.jd)
}

// MonthName returns the English month name.
func (h HijriDate) MonthName() string {
	return hijriMonthNames[h.Month-1]
}

// MonthNameArabic returns the Arabic month name.
func (h HijriDate) MonthNameArabic() string {
	return hijriMonthNamesArabic[h.Month-1]
}

// Format language selectors.
const (
	FormatNumeric = 0
	FormatArabic  = 1
	FormatEnglish = 2
)

// Format renders the date numerically (dd-mm-yyyy) or with the month
// name in Arabic or English.
func (h HijriDate) Format(lang int) (string, error) {
	switch lang {
	case FormatNumeric:
		return fmt.Sprintf("%02d-%02d-%04d", h.Day, h.Month, h.Year), nil
	case FormatArabic:
		return fmt.Sprintf("%d %s %d", h.Day, h.MonthNameArabic(), h.Year), nil
	case FormatEnglish:
		return fmt.Sprintf("%d %s %d", h.Day, h.MonthName(), h.Year), nil
	}
	return "", fmt.Errorf("%w: format language %d not in 0..2", ErrRange, lang)
}

func (h HijriDate) String() string {
	s, _ := h.Format(FormatNumeric)
	return s
}

// IsLeapHijriYear reports whether the year has 355 days in the 30-year
// arithmetic cycle.
func IsLeapHijriYear(year int) bool {
	return (11*year+3)%30 > 18
}

// DaysInHijriMonth returns the arithmetic length of a month: odd
// months have 30 days, even months 29, and the twelfth month 30 in
// leap years.
func DaysInHijriMonth(year, month int) int {
	if month%2 == 1 || (month == 12 && IsLeapHijriYear(year)) {
		return 30
	}
	return 29
}
