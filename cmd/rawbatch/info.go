package main

import (
	"github.com/spf13/cobra"

	"rawbatch/internal/app"
	"rawbatch/internal/config"
	appErrors "rawbatch/internal/errors"
	"rawbatch/internal/infra/exif"
	"rawbatch/internal/infra/raw"
	"rawbatch/internal/logging"
	"rawbatch/internal/presentation"
)

func newInfoCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "info <raw>",
		Short: "Decode one raw file and print its size, camera and decode time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := config.DefaultFlags()
			defaults.Input = args[0]
			defaults.Output = "."
			defaults.Workers = 1
			defaults.Verbose = flags.Verbose
			defaults.Dcraw = flags.Dcraw
			cfg, err := config.Load(defaults)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}

			logger := logging.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose)
			inspector := &app.Inspector{
				Decoder: raw.Decoder{Binary: cfg.Dcraw},
				Exif:    exif.Reader{},
			}
			res, err := inspector.Inspect(cmd.Context(), cfg.Input)
			if err != nil {
				return err
			}
			if res.ExifErr != nil {
				logger.Verbosef("%s", appErrors.UserMessage(res.ExifErr))
			}

			presentation.Printer{Writer: cmd.OutOrStdout(), Verbose: cfg.Verbose}.PrintInspection(res)
			return nil
		},
	}
}
