package cli

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"go.miqat.io/miqat-api/internal/display"
)

// execute runs the CLI with the given args and captures its output.
// A fresh root command resets the global flag values to their defaults.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	display.SetEnabled(false)

	cmd := NewRootCmd("test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

var clockRe = regexp.MustCompile(`\d{2}:\d{2}:\d{2}`)

func TestRoot_TimesTable(t *testing.T) {
	out, err := execute(t,
		"--latitude", "30.044", "--longitude", "31.25", "--timezone", "2",
		"--date", "2025-03-01",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha", "Midnight", "Last third", "Qiblah", "2025-03-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if n := len(clockRe.FindAllString(out, -1)); n < 9 {
		t.Errorf("expected at least 9 clock strings, found %d:\n%s", n, out)
	}
}

func TestRoot_TimesJSON(t *testing.T) {
	out, err := execute(t,
		"--latitude", "30.044", "--longitude", "31.25", "--timezone", "2",
		"--date", "2025-03-01", "--json",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	for _, key := range []string{"fajr", "isha", "last_third_of_night", "qiblah_deg", "hijri"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("JSON output missing key %q", key)
		}
	}
	if !clockRe.MatchString(resp["fajr"].(string)) {
		t.Errorf("fajr is not a clock string: %v", resp["fajr"])
	}
}

func TestRoot_MissingCoordinates(t *testing.T) {
	_, err := execute(t, "--date", "2025-03-01")
	if err == nil || !strings.Contains(err.Error(), "--latitude") {
		t.Errorf("expected missing coordinate error, got %v", err)
	}
}

func TestRoot_ExplicitMethod(t *testing.T) {
	out, err := execute(t,
		"--latitude", "30.044", "--longitude", "31.25", "--timezone", "2",
		"--date", "2025-03-01",
		"--fajr-angle", "19.5", "--isha-angle", "17.5",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "custom") {
		t.Errorf("expected custom method label:\n%s", out)
	}
}

func TestRoot_ExplicitMethodConflicts(t *testing.T) {
	cases := [][]string{
		// Registry ID and explicit parameters together.
		{"--method", "2", "--fajr-angle", "18", "--isha-angle", "17"},
		// Angle and fixed offset together.
		{"--fajr-angle", "18", "--isha-angle", "17", "--isha-offset-min", "90", "--isha-ramadan-min", "120"},
		// Half of a fixed offset.
		{"--fajr-angle", "18", "--isha-offset-min", "90"},
		// Isha entirely missing.
		{"--fajr-angle", "18"},
	}
	base := []string{"--latitude", "30.044", "--longitude", "31.25", "--timezone", "2", "--date", "2025-03-01"}
	for _, extra := range cases {
		if _, err := execute(t, append(base, extra...)...); err == nil {
			t.Errorf("expected error for flags %v", extra)
		}
	}
}

func TestHijri_FromGregorian(t *testing.T) {
	out, err := execute(t, "hijri", "--date", "2023-07-19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 Moharram 1445") {
		t.Errorf("expected 1 Moharram 1445 in output:\n%s", out)
	}
}

func TestHijri_ToGregorian(t *testing.T) {
	out, err := execute(t, "hijri", "to-gregorian", "1445", "1", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "2023-07-19") {
		t.Errorf("expected 2023-07-19 in output:\n%s", out)
	}
}

func TestHijri_InvalidInputs(t *testing.T) {
	if _, err := execute(t, "hijri", "to-gregorian", "1445", "13", "1"); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := execute(t, "hijri", "to-gregorian", "1445", "x", "1"); err == nil {
		t.Error("expected error for non-numeric day")
	}
	if _, err := execute(t, "hijri", "--date", "2023-07-19", "--correction", "5"); err == nil {
		t.Error("expected error for correction out of range")
	}
}

func TestQiblah(t *testing.T) {
	// Due south of Makkah: the bearing is exactly north.
	out, err := execute(t, "qiblah", "--latitude", "-10", "--longitude", "39.826174")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "0° 0' 0''") {
		t.Errorf("expected due north bearing:\n%s", out)
	}
}

func TestQiblah_JSON(t *testing.T) {
	out, err := execute(t, "qiblah", "--latitude", "30.044", "--longitude", "31.25", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		BearingDeg  float64 `json:"bearing_deg"`
		Sexagesimal string  `json:"sexagesimal"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if resp.BearingDeg < 130 || resp.BearingDeg > 142 {
		t.Errorf("Cairo bearing out of expected range: %f", resp.BearingDeg)
	}
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "methods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Muslim World League", "Umm al-Qura", "18.0°"} {
		if !strings.Contains(out, want) {
			t.Errorf("methods output missing %q:\n%s", want, out)
		}
	}
}
