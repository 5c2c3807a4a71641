package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"go.miqat.io/miqat-api/internal/display"
	"go.miqat.io/miqat-api/internal/domain"
	"go.miqat.io/miqat-api/internal/usecase"
)

func runTimes(cmd *cobra.Command, args []string) error {
	if err := requireCoordinates(cmd); err != nil {
		return err
	}

	date, err := parseDateFlag()
	if err != nil {
		return err
	}

	uc, err := newUseCase()
	if err != nil {
		return err
	}

	req := usecase.TimesRequest{
		Latitude:     FlagLatitude,
		Longitude:    FlagLongitude,
		Timezone:     FlagTimezone,
		SummerTime:   FlagSummer,
		AsrMadhab:    FlagMadhab,
		Date:         date,
		Correction:   FlagCorrection,
		ShiftSeconds: FlagShift,
	}

	method, err := methodFromFlags(cmd)
	if err != nil {
		return err
	}
	if method != nil {
		req.Method = method
	} else if FlagMethod >= 0 {
		id := FlagMethod
		req.MethodID = &id
	}

	resp, err := uc.Execute(req)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(cmd, resp)
	}

	printTimesTable(cmd, resp)
	return nil
}

// methodFromFlags builds an explicit method from the angle flags, or
// returns nil when none were set. A fixed Isha offset requires both
// the all-year and Ramadan values.
func methodFromFlags(cmd *cobra.Command) (*domain.Method, error) {
	flags := cmd.Flags()
	root := cmd.Root().PersistentFlags()

	fajrSet := flagWasSet(flags, root, "fajr-angle")
	ishaSet := flagWasSet(flags, root, "isha-angle")
	offsetSet := flagWasSet(flags, root, "isha-offset-min")
	ramadanSet := flagWasSet(flags, root, "isha-ramadan-min")

	if !fajrSet && !ishaSet && !offsetSet && !ramadanSet {
		return nil, nil
	}
	if !fajrSet {
		return nil, fmt.Errorf("--fajr-angle is required with explicit method parameters")
	}
	if offsetSet != ramadanSet {
		return nil, fmt.Errorf("--isha-offset-min and --isha-ramadan-min must be given together")
	}
	if ishaSet && offsetSet {
		return nil, fmt.Errorf("--isha-angle and --isha-offset-min are mutually exclusive")
	}
	if !ishaSet && !offsetSet {
		return nil, fmt.Errorf("either --isha-angle or a fixed Isha offset is required")
	}

	m := &domain.Method{FajrAngle: FlagFajrAngle}
	if ishaSet {
		m.IshaAngle = FlagIshaAngle
	} else {
		m.IshaOffset = &domain.FixedOffset{
			AllYearMin: FlagIshaOffset,
			RamadanMin: FlagIshaRamadan,
		}
	}
	return m, nil
}

func printTimesTable(cmd *cobra.Command, resp *usecase.TimesResponse) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Bold("Prayer Times"))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %.4f, %.4f (UTC%+d)\n", FlagLatitude, FlagLongitude, FlagTimezone)
	fmt.Fprintf(out, "  %s\n", resp.Date)
	fmt.Fprintf(out, "  %s\n", resp.Hijri.Formatted)
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"Prayer", "Time"})
	tbl.AddRow([]string{"Fajr", resp.Fajr})
	tbl.AddRow([]string{"Sunrise", resp.Sunrise})
	tbl.AddRow([]string{"Dhuhr", resp.Dhuhr})
	tbl.AddRow([]string{"Asr", resp.Asr})
	tbl.AddRow([]string{"Maghrib", resp.Maghrib})
	tbl.AddRow([]string{"Isha", resp.Isha})
	tbl.AddRow([]string{"Midnight", resp.Midnight})
	tbl.AddRow([]string{"Second third", resp.SecondThird})
	tbl.AddRow([]string{"Last third", resp.LastThird})
	fmt.Fprint(out, tbl.Render())

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Qiblah: %s (%.2f°)\n", resp.QiblahSexagesimal, resp.QiblahDeg)
	fmt.Fprintf(out, "  Method: %s, Asr: %s\n", resp.Meta["method"], resp.Meta["asr_madhab"])
	fmt.Fprintln(out)
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
