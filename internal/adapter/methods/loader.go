package methods

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.miqat.io/miqat-api/internal/domain"
)

// Loader reads a method registry from a CSV file, one method per row.
// Organizations are separated with semicolons; the two offset columns
// are empty for angle-based methods and both set for fixed-interval
// methods (in which case isha_angle is ignored and may be empty).
type Loader struct {
	path string
}

// NewLoader creates a CSV-backed registry source.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

var expectedHeaders = []string{
	"id", "organizations", "fajr_angle", "isha_angle", "isha_all_year_min", "isha_ramadan_min",
}

// Load implements Source.
func (l *Loader) Load() ([]domain.Method, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open methods CSV: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expectedHeaders, header)
	}
	for i, h := range header {
		if h != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid CSV header: expected column %d to be %s, got %s", i, expectedHeaders[i], h)
		}
	}

	registry := make([]domain.Method, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		m, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid method on line %d: %w", line, err)
		}
		registry = append(registry, m)
	}

	if len(registry) == 0 {
		return nil, fmt.Errorf("methods CSV %s contains no methods", l.path)
	}
	return registry, nil
}

func parseRecord(record []string) (domain.Method, error) {
	if len(record) != len(expectedHeaders) {
		return domain.Method{}, fmt.Errorf("expected %d fields, got %d", len(expectedHeaders), len(record))
	}

	id, err := strconv.Atoi(record[0])
	if err != nil {
		return domain.Method{}, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	orgs := strings.Split(record[1], ";")
	for i := range orgs {
		orgs[i] = strings.TrimSpace(orgs[i])
	}

	fajr, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return domain.Method{}, fmt.Errorf("invalid fajr_angle %q: %w", record[2], err)
	}

	m := domain.Method{ID: id, Organizations: orgs, FajrAngle: fajr}

	allYear, ramadan := record[4], record[5]
	switch {
	case allYear != "" && ramadan != "":
		ay, err := strconv.ParseFloat(allYear, 64)
		if err != nil {
			return domain.Method{}, fmt.Errorf("invalid isha_all_year_min %q: %w", allYear, err)
		}
		rm, err := strconv.ParseFloat(ramadan, 64)
		if err != nil {
			return domain.Method{}, fmt.Errorf("invalid isha_ramadan_min %q: %w", ramadan, err)
		}
		m.IshaOffset = &domain.FixedOffset{AllYearMin: ay, RamadanMin: rm}
	case allYear == "" && ramadan == "":
		isha, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return domain.Method{}, fmt.Errorf("invalid isha_angle %q: %w", record[3], err)
		}
		m.IshaAngle = isha
	default:
		return domain.Method{}, fmt.Errorf("isha_all_year_min and isha_ramadan_min must be set together")
	}

	return m, nil
}
