package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go.miqat.io/miqat-api/internal/domain"
	"go.miqat.io/miqat-api/internal/usecase"
)

// Handler handles HTTP requests for prayer times, Hijri conversion and
// Qiblah bearings.
type Handler struct {
	timesUC *usecase.TimesUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(timesUC *usecase.TimesUseCase) *Handler {
	return &Handler{timesUC: timesUC}
}

// GetTimes handles GET /v1/prayers/times.
func (h *Handler) GetTimes(c *gin.Context) {
	req := usecase.TimesRequest{}

	lat, ok := requireFloat(c, "lat")
	if !ok {
		return
	}
	lon, ok := requireFloat(c, "lon")
	if !ok {
		return
	}
	req.Latitude = lat
	req.Longitude = lon

	tz, ok := requireInt(c, "tz")
	if !ok {
		return
	}
	req.Timezone = tz

	// Date defaults to the current UTC day.
	date, ok := parseDate(c, time.Now().UTC())
	if !ok {
		return
	}
	req.Date = date

	if s := c.Query("method"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid method: %v", err))
			return
		}
		req.MethodID = &id
	}

	// Explicit method parameters override the registry.
	fajrStr := c.Query("fajr_angle")
	ishaStr := c.Query("isha_angle")
	offsetStr := c.Query("isha_offset_min")
	ramadanStr := c.Query("isha_ramadan_min")
	if fajrStr != "" || ishaStr != "" || offsetStr != "" || ramadanStr != "" {
		method, err := parseExplicitMethod(fajrStr, ishaStr, offsetStr, ramadanStr)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		req.Method = method
	}

	if s := c.Query("madhab"); s != "" {
		madhab, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid madhab: %v", err))
			return
		}
		req.AsrMadhab = madhab
	}

	if s := c.Query("summer"); s != "" {
		summer, err := strconv.ParseBool(s)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid summer flag: %v", err))
			return
		}
		req.SummerTime = summer
	}

	if s := c.Query("correction"); s != "" {
		correction, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid correction: %v", err))
			return
		}
		req.Correction = correction
	}

	if s := c.Query("shift"); s != "" {
		shift, err := strconv.ParseFloat(s, 64)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid shift: %v", err))
			return
		}
		req.ShiftSeconds = shift
	}

	resp, err := h.timesUC.Execute(req)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQiblah handles GET /v1/qiblah.
func (h *Handler) GetQiblah(c *gin.Context) {
	lat, ok := requireFloat(c, "lat")
	if !ok {
		return
	}
	lon, ok := requireFloat(c, "lon")
	if !ok {
		return
	}

	resp, err := h.timesUC.Qiblah(lon, lat)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetHijriFromGregorian handles GET /v1/hijri/from-gregorian.
func (h *Handler) GetHijriFromGregorian(c *gin.Context) {
	if c.Query("date") == "" {
		badRequest(c, "date parameter is required")
		return
	}
	date, ok := parseDate(c, time.Time{})
	if !ok {
		return
	}

	correction := 0
	if s := c.Query("correction"); s != "" {
		var err error
		correction, err = strconv.Atoi(s)
		if err != nil {
			badRequest(c, fmt.Sprintf("invalid correction: %v", err))
			return
		}
	}

	resp, err := h.timesUC.HijriFromGregorian(date, correction)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetGregorianFromHijri handles GET /v1/hijri/to-gregorian.
func (h *Handler) GetGregorianFromHijri(c *gin.Context) {
	year, ok := requireInt(c, "year")
	if !ok {
		return
	}
	month, ok := requireInt(c, "month")
	if !ok {
		return
	}
	day, ok := requireInt(c, "day")
	if !ok {
		return
	}

	g, err := h.timesUC.GregorianFromHijri(year, month, day)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  g.String(),
		"year":  g.Year,
		"month": g.Month,
		"day":   g.Day,
	})
}

// GetMethods handles GET /v1/methods.
func (h *Handler) GetMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"methods": h.timesUC.Methods(),
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func requireFloat(c *gin.Context, name string) (float64, bool) {
	s := c.Query(name)
	if s == "" {
		badRequest(c, fmt.Sprintf("%s parameter is required", name))
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s: %v", name, err))
		return 0, false
	}
	return v, true
}

func requireInt(c *gin.Context, name string) (int, bool) {
	s := c.Query(name)
	if s == "" {
		badRequest(c, fmt.Sprintf("%s parameter is required", name))
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid %s: %v", name, err))
		return 0, false
	}
	return v, true
}

// parseDate reads the date query parameter (YYYY-MM-DD), falling back
// to the given default when absent.
func parseDate(c *gin.Context, fallback time.Time) (domain.GregorianDate, bool) {
	s := c.Query("date")
	if s == "" {
		d := domain.GregorianDate{
			Year:  fallback.Year(),
			Month: int(fallback.Month()),
			Day:   fallback.Day(),
		}
		return d, true
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		badRequest(c, fmt.Sprintf("invalid date (expected YYYY-MM-DD): %v", err))
		return domain.GregorianDate{}, false
	}
	d, err := domain.NewGregorianDate(t.Year(), int(t.Month()), t.Day())
	if err != nil {
		badRequest(c, err.Error())
		return domain.GregorianDate{}, false
	}
	return d, true
}

func parseExplicitMethod(fajr, isha, offset, ramadan string) (*domain.Method, error) {
	if fajr == "" {
		return nil, fmt.Errorf("fajr_angle is required with explicit method parameters")
	}
	fajrAngle, err := strconv.ParseFloat(fajr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid fajr_angle: %v", err)
	}

	m := &domain.Method{FajrAngle: fajrAngle}
	switch {
	case offset != "" && ramadan != "":
		if isha != "" {
			return nil, fmt.Errorf("isha_angle and isha offsets are mutually exclusive")
		}
		allYear, err := strconv.ParseFloat(offset, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid isha_offset_min: %v", err)
		}
		ramadanMin, err := strconv.ParseFloat(ramadan, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid isha_ramadan_min: %v", err)
		}
		m.IshaOffset = &domain.FixedOffset{AllYearMin: allYear, RamadanMin: ramadanMin}
	case offset == "" && ramadan == "":
		if isha == "" {
			return nil, fmt.Errorf("either isha_angle or both isha offsets are required")
		}
		ishaAngle, err := strconv.ParseFloat(isha, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid isha_angle: %v", err)
		}
		m.IshaAngle = ishaAngle
	default:
		return nil, fmt.Errorf("isha_offset_min and isha_ramadan_min must be set together")
	}
	return m, nil
}
