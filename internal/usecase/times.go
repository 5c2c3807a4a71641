// Package usecase orchestrates the domain engine for the HTTP and CLI
// surfaces: method resolution, input validation and response shaping.
package usecase

import (
	"fmt"
	"strings"

	"go.miqat.io/miqat-api/internal/adapter/methods"
	"go.miqat.io/miqat-api/internal/domain"
)

// TimesRequest encapsulates one prayer-times computation.
type TimesRequest struct {
	Latitude   float64
	Longitude  float64
	Timezone   int
	SummerTime bool

	// Method selection: a registry ID, or an explicit parameter set
	// (mutually exclusive; MethodID wins when both are nil/absent the
	// registry default applies).
	MethodID *int
	Method   *domain.Method

	AsrMadhab int // 1 standard, 2 Hanafi

	Date         domain.GregorianDate
	Correction   int // Hijri day correction in [-2, 2]
	ShiftSeconds float64
}

// TimesResponse contains the nine instants plus context. Field names
// follow the conventional prayer-time payload shape.
type TimesResponse struct {
	Date  string        `json:"date"`
	Hijri HijriResponse `json:"hijri"`

	Fajr        string `json:"fajr"`
	Sunrise     string `json:"sunrise"`
	Dhuhr       string `json:"dhuhr"`
	Asr         string `json:"asr"`
	Maghrib     string `json:"maghrib"`
	Isha        string `json:"isha"`
	Midnight    string `json:"midnight"`
	SecondThird string `json:"second_third_of_night"`
	LastThird   string `json:"last_third_of_night"`

	QiblahDeg         float64 `json:"qiblah_deg"`
	QiblahSexagesimal string  `json:"qiblah_sexagesimal"`

	Meta map[string]string `json:"meta"`
}

// HijriResponse is a Hijri date with its renderings.
type HijriResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name"`
	Formatted string `json:"formatted"`
}

// MethodInfo describes one registry entry for listings.
type MethodInfo struct {
	ID            int                 `json:"id"`
	Organizations []string            `json:"organizations"`
	FajrAngle     float64             `json:"fajr_angle"`
	IshaAngle     *float64            `json:"isha_angle,omitempty"`
	IshaOffset    *domain.FixedOffset `json:"isha_offset,omitempty"`
}

// QiblahResponse is a bearing with its sexagesimal rendering.
type QiblahResponse struct {
	BearingDeg  float64 `json:"bearing_deg"`
	Sexagesimal string  `json:"sexagesimal"`
}

// TimesUseCase computes prayer times, Hijri conversions and Qiblah
// bearings against a fixed method registry.
type TimesUseCase struct {
	registry []domain.Method
}

// NewTimesUseCase loads the registry from the given source once; the
// use case is immutable afterwards and safe for concurrent use.
func NewTimesUseCase(source methods.Source) (*TimesUseCase, error) {
	registry, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load method registry: %w", err)
	}
	return &TimesUseCase{registry: registry}, nil
}

// Execute validates the request and runs the computation pipeline.
func (uc *TimesUseCase) Execute(req TimesRequest) (*TimesResponse, error) {
	if err := validateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}
	if req.Timezone < -12 || req.Timezone > 14 {
		return nil, fmt.Errorf("%w: timezone %d not in [-12, 14]", domain.ErrRange, req.Timezone)
	}

	method, err := uc.resolveMethod(req)
	if err != nil {
		return nil, err
	}

	loc := domain.Location{
		Longitude:  req.Longitude,
		Latitude:   req.Latitude,
		Timezone:   req.Timezone,
		SummerTime: req.SummerTime,
	}
	cfg := domain.NewConfig(loc, method, domain.AsrMadhab(req.AsrMadhab))

	ts, err := domain.ComputeTimes(cfg, req.Date, req.Correction)
	if err != nil {
		return nil, err
	}

	clock := func(hours float64) (string, error) {
		tod, err := ts.Clock(hours, req.ShiftSeconds)
		if err != nil {
			return "", err
		}
		return tod.String(), nil
	}

	resp := &TimesResponse{
		Date:  req.Date.String(),
		Hijri: hijriResponse(domain.HijriFromGregorian(req.Date, req.Correction)),
		Meta: map[string]string{
			"method":     methodLabel(method),
			"asr_madhab": madhabLabel(cfg.AsrMadhab),
		},
	}

	instants := []struct {
		hours float64
		dst   *string
	}{
		{ts.Fajr, &resp.Fajr},
		{ts.Sunrise, &resp.Sunrise},
		{ts.Dhuhr, &resp.Dhuhr},
		{ts.Asr, &resp.Asr},
		{ts.Maghrib, &resp.Maghrib},
		{ts.Isha, &resp.Isha},
		{ts.Midnight, &resp.Midnight},
		{ts.SecondThird, &resp.SecondThird},
		{ts.LastThird, &resp.LastThird},
	}
	for _, in := range instants {
		s, err := clock(in.hours)
		if err != nil {
			return nil, err
		}
		*in.dst = s
	}

	bearing := domain.QiblahDirection(req.Longitude, req.Latitude)
	resp.QiblahDeg = bearing
	resp.QiblahSexagesimal = domain.Sexagesimal(bearing)

	return resp, nil
}

// Qiblah computes the bearing only.
func (uc *TimesUseCase) Qiblah(longitude, latitude float64) (*QiblahResponse, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	bearing := domain.QiblahDirection(longitude, latitude)
	return &QiblahResponse{
		BearingDeg:  bearing,
		Sexagesimal: domain.Sexagesimal(bearing),
	}, nil
}

// HijriFromGregorian converts a civil date.
func (uc *TimesUseCase) HijriFromGregorian(date domain.GregorianDate, correction int) (*HijriResponse, error) {
	if correction < -2 || correction > 2 {
		return nil, fmt.Errorf("%w: correction %d not in [-2, 2]", domain.ErrRange, correction)
	}
	h := domain.HijriFromGregorian(date, correction)
	resp := hijriResponse(h)
	return &resp, nil
}

// GregorianFromHijri converts a Hijri triple back to the civil
// calendar. No correction applies in this direction.
func (uc *TimesUseCase) GregorianFromHijri(year, month, day int) (domain.GregorianDate, error) {
	h, err := domain.NewHijriDate(year, month, day)
	if err != nil {
		return domain.GregorianDate{}, err
	}
	return h.ToGregorian(), nil
}

// Methods lists the registry.
func (uc *TimesUseCase) Methods() []MethodInfo {
	infos := make([]MethodInfo, 0, len(uc.registry))
	for _, m := range uc.registry {
		info := MethodInfo{
			ID:            m.ID,
			Organizations: m.Organizations,
			FajrAngle:     m.FajrAngle,
		}
		if m.IshaOffset != nil {
			off := *m.IshaOffset
			info.IshaOffset = &off
		} else {
			angle := m.IshaAngle
			info.IshaAngle = &angle
		}
		infos = append(infos, info)
	}
	return infos
}

func (uc *TimesUseCase) resolveMethod(req TimesRequest) (domain.Method, error) {
	switch {
	case req.Method != nil && req.MethodID != nil:
		return domain.Method{}, fmt.Errorf("method id and explicit method parameters are mutually exclusive")
	case req.Method != nil:
		return *req.Method, nil
	case req.MethodID != nil:
		return methods.Lookup(uc.registry, *req.MethodID)
	default:
		return methods.Lookup(uc.registry, methods.DefaultMethodID)
	}
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%w: latitude %.4f not in [-90, 90]", domain.ErrRange, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%w: longitude %.4f not in [-180, 180]", domain.ErrRange, longitude)
	}
	return nil
}

func hijriResponse(h domain.HijriDate) HijriResponse {
	formatted, _ := h.Format(domain.FormatEnglish)
	return HijriResponse{
		Year:      h.Year,
		Month:     h.Month,
		Day:       h.Day,
		MonthName: h.MonthName(),
		Formatted: formatted,
	}
}

func methodLabel(m domain.Method) string {
	if len(m.Organizations) == 0 {
		if m.ID != 0 {
			return fmt.Sprintf("method %d", m.ID)
		}
		return "custom"
	}
	return strings.Join(m.Organizations, "; ")
}

func madhabLabel(m domain.AsrMadhab) string {
	if m == domain.AsrHanafi {
		return "hanafi"
	}
	return "standard"
}
