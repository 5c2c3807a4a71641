// Package cli implements the miqat command line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.miqat.io/miqat-api/internal/adapter/methods"
	"go.miqat.io/miqat-api/internal/domain"
	"go.miqat.io/miqat-api/internal/usecase"
)

// Global flags shared across all subcommands.
var (
	FlagLatitude   float64
	FlagLongitude  float64
	FlagTimezone   int
	FlagSummer     bool
	FlagMethod     int
	FlagMadhab     int
	FlagDate       string
	FlagCorrection int
	FlagShift      float64
	FlagJSON       bool
	FlagMethodsCSV string

	// Explicit method parameters, mutually exclusive with --method.
	FlagFajrAngle   float64
	FlagIshaAngle   float64
	FlagIshaOffset  float64
	FlagIshaRamadan float64
)

// NewRootCmd creates the root command for the miqat CLI.
// The version parameter is set by the calling binary via ldflags.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "miqat",
		Short:   "Islamic prayer times, Hijri calendar and Qiblah CLI",
		Long:    "Compute prayer times, Hijri dates and the Qiblah bearing locally from astronomical formulas. No network access required.",
		Version: version,
		// Default action: show today's prayer schedule.
		RunE:          runTimes,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&FlagLatitude, "latitude", 0, "Observer latitude in degrees, north positive")
	pf.Float64Var(&FlagLongitude, "longitude", 0, "Observer longitude in degrees, east positive")
	pf.IntVar(&FlagTimezone, "timezone", 0, "UTC offset in whole hours")
	pf.BoolVar(&FlagSummer, "summer", false, "Apply a one hour daylight saving shift")
	pf.IntVar(&FlagMethod, "method", -1, "Calculation method ID (see 'miqat methods')")
	pf.IntVar(&FlagMadhab, "madhab", 1, "Asr madhab (1=standard, 2=Hanafi)")
	pf.StringVar(&FlagDate, "date", "", "Gregorian date as YYYY-MM-DD (default: today)")
	pf.IntVar(&FlagCorrection, "correction", 0, "Hijri day correction in [-2, 2]")
	pf.Float64Var(&FlagShift, "shift", 0, "Clock shift in seconds applied to every time")
	pf.BoolVar(&FlagJSON, "json", false, "Output as JSON")
	pf.StringVar(&FlagMethodsCSV, "methods-csv", "", "Load the method registry from a CSV file")

	pf.Float64Var(&FlagFajrAngle, "fajr-angle", 0, "Explicit Fajr twilight angle in degrees")
	pf.Float64Var(&FlagIshaAngle, "isha-angle", 0, "Explicit Isha twilight angle in degrees")
	pf.Float64Var(&FlagIshaOffset, "isha-offset-min", 0, "Fixed Isha offset after Maghrib in minutes")
	pf.Float64Var(&FlagIshaRamadan, "isha-ramadan-min", 0, "Fixed Isha offset during Ramadan in minutes")

	rootCmd.AddCommand(newHijriCmd())
	rootCmd.AddCommand(newQiblahCmd())
	rootCmd.AddCommand(newMethodsCmd())

	return rootCmd
}

// newUseCase builds a use case from the selected registry source.
func newUseCase() (*usecase.TimesUseCase, error) {
	var source methods.Source = methods.Builtin{}
	if FlagMethodsCSV != "" {
		source = methods.NewLoader(FlagMethodsCSV)
	}
	return usecase.NewTimesUseCase(source)
}

// requireCoordinates errors unless --latitude and --longitude were set.
func requireCoordinates(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	if !pf.Changed("latitude") || !pf.Changed("longitude") {
		return fmt.Errorf("--latitude and --longitude are required")
	}
	return nil
}

// parseDateFlag returns the --date value or today's date in UTC.
func parseDateFlag() (domain.GregorianDate, error) {
	if FlagDate == "" {
		now := time.Now().UTC()
		return domain.GregorianDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}, nil
	}
	t, err := time.Parse("2006-01-02", FlagDate)
	if err != nil {
		return domain.GregorianDate{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", FlagDate)
	}
	return domain.GregorianDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// flagWasSet checks whether a flag was set on the local or persistent set.
func flagWasSet(local, persistent *pflag.FlagSet, name string) bool {
	if f := local.Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := persistent.Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}
