package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQiblahCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qiblah",
		Short: "Show the Qiblah bearing for a location",
		Long:  "Compute the great-circle bearing toward the Kaaba from --latitude and --longitude, measured clockwise from true north.",
		RunE:  runQiblah,
	}
}

func runQiblah(cmd *cobra.Command, args []string) error {
	if err := requireCoordinates(cmd); err != nil {
		return err
	}

	uc, err := newUseCase()
	if err != nil {
		return err
	}

	resp, err := uc.Qiblah(FlagLongitude, FlagLatitude)
	if err != nil {
		return err
	}

	if FlagJSON {
		return printJSON(cmd, resp)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Qiblah from %.4f, %.4f: %s (%.2f° from north)\n",
		FlagLatitude, FlagLongitude, resp.Sexagesimal, resp.BearingDeg)
	return nil
}
