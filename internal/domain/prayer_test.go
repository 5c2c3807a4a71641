package domain

import (
	"errors"
	"math"
	"testing"
)

var mwl = Method{ID: 2, FajrAngle: 18, IshaAngle: 17}

func cairoConfig(madhab AsrMadhab) Config {
	return NewConfig(Location{Longitude: 31.25, Latitude: 30.044, Timezone: 2}, mwl, madhab)
}

// TestComputeTimes_Ordering: the decimal-hour values must be strictly
// increasing through the day before wraparound.
func TestComputeTimes_Ordering(t *testing.T) {
	cfg := cairoConfig(AsrStandard)
	dates := []GregorianDate{
		{2025, 3, 1}, {2025, 6, 21}, {2025, 9, 23}, {2025, 12, 21},
	}
	for _, date := range dates {
		ts, err := ComputeTimes(cfg, date, 0)
		if err != nil {
			t.Fatalf("ComputeTimes(%v): %v", date, err)
		}
		ordered := []struct {
			name string
			val  float64
		}{
			{"fajr", ts.Fajr}, {"sunrise", ts.Sunrise}, {"dhuhr", ts.Dhuhr},
			{"asr", ts.Asr}, {"maghrib", ts.Maghrib}, {"isha", ts.Isha},
			{"midnight", ts.Midnight},
		}
		for i := 1; i < len(ordered); i++ {
			if !(ordered[i-1].val < ordered[i].val) {
				t.Errorf("%v: %s (%.4f) should be before %s (%.4f)",
					date, ordered[i-1].name, ordered[i-1].val, ordered[i].name, ordered[i].val)
			}
		}
		if !(ts.Maghrib < ts.SecondThird && ts.SecondThird < ts.Midnight && ts.Midnight < ts.LastThird) {
			t.Errorf("%v: night divisions out of order: %.4f %.4f %.4f",
				date, ts.SecondThird, ts.Midnight, ts.LastThird)
		}
	}
}

// TestComputeTimes_AsrMadhab: the Hanafi shadow ratio must push Asr
// strictly later than the standard one.
func TestComputeTimes_AsrMadhab(t *testing.T) {
	date := GregorianDate{Year: 2025, Month: 3, Day: 1}

	standard, err := ComputeTimes(cairoConfig(AsrStandard), date, 0)
	if err != nil {
		t.Fatal(err)
	}
	hanafi, err := ComputeTimes(cairoConfig(AsrHanafi), date, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !(hanafi.Asr > standard.Asr) {
		t.Errorf("hanafi asr %.4f should be later than standard asr %.4f", hanafi.Asr, standard.Asr)
	}
	if standard.Dhuhr != hanafi.Dhuhr {
		t.Errorf("dhuhr should not depend on the madhab: %.4f vs %.4f", standard.Dhuhr, hanafi.Dhuhr)
	}
}

// TestComputeTimes_FixedOffsetIsha: a fixed-interval method places
// Isha at Maghrib plus the all-year offset, or the Ramadan offset when
// the Hijri month of the date is the ninth.
func TestComputeTimes_FixedOffsetIsha(t *testing.T) {
	ummAlQura := Method{
		ID:         4,
		FajrAngle:  18.5,
		IshaOffset: &FixedOffset{AllYearMin: 90, RamadanMin: 120},
	}
	cfg := NewConfig(Location{Longitude: 39.826174, Latitude: 21.42249, Timezone: 3}, ummAlQura, AsrStandard)

	ramadan, _ := NewHijriDate(1446, 9, 15)
	ts, err := ComputeTimes(cfg, ramadan.ToGregorian(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if gap := ts.Isha - ts.Maghrib; math.Abs(gap-2.0) > 1e-9 {
		t.Errorf("ramadan isha gap: got %.6f hours, want 2", gap)
	}

	shaban, _ := NewHijriDate(1446, 8, 15)
	ts, err = ComputeTimes(cfg, shaban.ToGregorian(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if gap := ts.Isha - ts.Maghrib; math.Abs(gap-1.5) > 1e-9 {
		t.Errorf("all-year isha gap: got %.6f hours, want 1.5", gap)
	}
}

// TestComputeTimes_CorrectionMovesRamadan: shifting the Hijri mapping
// by a day can move a boundary date in or out of Ramadan.
func TestComputeTimes_CorrectionMovesRamadan(t *testing.T) {
	method := Method{FajrAngle: 19.5, IshaOffset: &FixedOffset{AllYearMin: 90, RamadanMin: 120}}
	cfg := NewConfig(Location{Longitude: 46.7, Latitude: 24.6, Timezone: 3}, method, AsrStandard)

	// Last day of Shaban 1446: a +1 correction lands it in Ramadan.
	lastShaban, _ := NewHijriDate(1446, 8, DaysInHijriMonth(1446, 8))
	date := lastShaban.ToGregorian()

	plain, err := ComputeTimes(cfg, date, 0)
	if err != nil {
		t.Fatal(err)
	}
	shifted, err := ComputeTimes(cfg, date, 1)
	if err != nil {
		t.Fatal(err)
	}

	if gap := plain.Isha - plain.Maghrib; math.Abs(gap-1.5) > 1e-9 {
		t.Errorf("uncorrected gap: got %.6f hours, want 1.5", gap)
	}
	if gap := shifted.Isha - shifted.Maghrib; math.Abs(gap-2.0) > 1e-9 {
		t.Errorf("corrected gap: got %.6f hours, want 2", gap)
	}
}

func TestComputeTimes_CorrectionRange(t *testing.T) {
	cfg := cairoConfig(AsrStandard)
	date := GregorianDate{Year: 2025, Month: 3, Day: 1}

	for _, c := range []int{-2, -1, 0, 1, 2} {
		if _, err := ComputeTimes(cfg, date, c); err != nil {
			t.Errorf("correction %d: unexpected error %v", c, err)
		}
	}
	for _, c := range []int{-3, 3, 10} {
		if _, err := ComputeTimes(cfg, date, c); !errors.Is(err, ErrRange) {
			t.Errorf("correction %d: expected ErrRange, got %v", c, err)
		}
	}
}

func TestClock_Conversion(t *testing.T) {
	ts := TimeSet{}

	got, err := ts.Clock(10.25, 0)
	if err != nil || got != (TimeOfDay{Hour: 10, Minute: 15}) {
		t.Errorf("Clock(10.25, 0): got %v, err %v", got, err)
	}

	// Shift of one hour expressed in seconds.
	got, err = ts.Clock(10.25, 3600)
	if err != nil || got != (TimeOfDay{Hour: 11, Minute: 15}) {
		t.Errorf("Clock(10.25, 3600): got %v, err %v", got, err)
	}

	// Values past midnight wrap to the next civil day.
	got, err = ts.Clock(25.5, 0)
	if err != nil || got != (TimeOfDay{Hour: 1, Minute: 30}) {
		t.Errorf("Clock(25.5, 0): got %v, err %v", got, err)
	}

	// Summer time adds an hour.
	summer := TimeSet{summerTime: true}
	got, err = summer.Clock(10.25, 0)
	if err != nil || got != (TimeOfDay{Hour: 11, Minute: 15}) {
		t.Errorf("summer Clock(10.25, 0): got %v, err %v", got, err)
	}

	if _, err := ts.Clock(10, math.NaN()); !errors.Is(err, ErrShift) {
		t.Errorf("NaN shift: expected ErrShift, got %v", err)
	}
	if _, err := ts.Clock(10, math.Inf(1)); !errors.Is(err, ErrShift) {
		t.Errorf("Inf shift: expected ErrShift, got %v", err)
	}
}

func TestTimeOfDayString(t *testing.T) {
	if s := (TimeOfDay{Hour: 5, Minute: 3, Second: 9}).String(); s != "05:03:09" {
		t.Errorf("String(): got %q", s)
	}
}
