package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.miqat.io/miqat-api/internal/display"
)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List all calculation methods",
		Long:  "Print the registry of calculation methods with their twilight angles.",
		RunE:  runMethods,
	}
}

func runMethods(cmd *cobra.Command, args []string) error {
	uc, err := newUseCase()
	if err != nil {
		return err
	}

	infos := uc.Methods()

	if FlagJSON {
		return printJSON(cmd, infos)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n", display.Bold("Calculation Methods"))
	fmt.Fprintln(out)

	tbl := display.NewTable([]string{"ID", "Fajr", "Isha", "Organizations"})
	for _, m := range infos {
		isha := ""
		if m.IshaAngle != nil {
			isha = fmt.Sprintf("%.1f°", *m.IshaAngle)
		} else if m.IshaOffset != nil {
			isha = fmt.Sprintf("+%.0f min (%.0f in Ramadan)", m.IshaOffset.AllYearMin, m.IshaOffset.RamadanMin)
		}
		tbl.AddRow([]string{
			fmt.Sprintf("%d", m.ID),
			fmt.Sprintf("%.1f°", m.FajrAngle),
			isha,
			strings.Join(m.Organizations, "; "),
		})
	}
	fmt.Fprint(out, tbl.Render())

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Use --method <ID> to select a calculation method.")
	fmt.Fprintln(out)
	return nil
}
