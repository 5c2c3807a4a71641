package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newHijriCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hijri",
		Short: "Convert the Gregorian date to Hijri",
		Long:  "Convert --date (default: today) to the Hijri calendar, applying the --correction day adjustment.",
		RunE:  runHijriFromGregorian,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "to-gregorian <year> <month> <day>",
		Short: "Convert a Hijri date to Gregorian",
		Args:  cobra.ExactArgs(3),
		RunE:  runHijriToGregorian,
	})

	return cmd
}

func runHijriFromGregorian(cmd *cobra.Command, args []string) error {
	date, err := parseDateFlag()
	if err != nil {
		return err
	}

	uc, err := newUseCase()
	if err != nil {
		return err
	}

	resp, err := uc.HijriFromGregorian(date, FlagCorrection)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(cmd, resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s is %s\n", date, resp.Formatted)
	return nil
}

func runHijriToGregorian(cmd *cobra.Command, args []string) error {
	vals := make([]int, 3)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid number %q", a)
		}
		vals[i] = v
	}

	uc, err := newUseCase()
	if err != nil {
		return err
	}

	g, err := uc.GregorianFromHijri(vals[0], vals[1], vals[2])
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(cmd, g)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d-%d-%d AH is %s\n", vals[0], vals[1], vals[2], g)
	return nil
}
