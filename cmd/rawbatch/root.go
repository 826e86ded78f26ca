package main

import (
	"github.com/spf13/cobra"

	"rawbatch/internal/config"
	appErrors "rawbatch/internal/errors"
)

func newRootCmd() *cobra.Command {
	flags := config.DefaultFlags()

	cmd := &cobra.Command{
		Use:   "rawbatch [flags] <input>",
		Short: "Convert camera raw files and mirror a directory tree",
		Long: "rawbatch walks <input> (a file or directory), decodes raw files into JPEG, PNG or TIFF\n" +
			"and copies, moves or ignores everything else, keeping the relative layout under --output.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Input = args[0]
			cfg, err := config.Load(flags)
			if err != nil {
				return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "output directory (or RAWBATCH_OUTPUT)")
	f.StringVarP(&flags.Raws, "raws", "r", flags.Raws, "action for raw files: parse, copy, move, ignore")
	f.StringVarP(&flags.Images, "images", "i", flags.Images, "action for image files: copy, move, ignore")
	f.StringVarP(&flags.Files, "files", "f", flags.Files, "action for other files: copy, move, ignore")
	f.StringVarP(&flags.Existing, "existing", "e", flags.Existing, "when the output exists: ignore, rename")
	f.StringVar(&flags.Encoder, "encoder", flags.Encoder, "output format for parsed raws: jpeg, png, tiff")
	f.IntVarP(&flags.Quality, "quality", "q", flags.Quality, "jpeg quality (0-100)")
	f.StringVar(&flags.PNGCompression, "png-compression", flags.PNGCompression, "png compression: default, none, fast, best")
	f.StringVar(&flags.PNGFilter, "png-filter", flags.PNGFilter, "png row filter: adaptive")
	f.IntVarP(&flags.Workers, "workers", "j", flags.Workers, "number of workers, 1 runs sequentially (default: RAWBATCH_WORKERS or CPU count)")
	f.BoolVar(&flags.Progress, "progress", flags.Progress, "show a live progress bar")
	f.StringSliceVar(&flags.RawExtensions, "raw-ext", flags.RawExtensions, "extensions treated as raw files")
	f.StringSliceVar(&flags.ImgExtensions, "image-ext", flags.ImgExtensions, "extensions treated as image files")
	f.IntVar(&flags.RenameLimit, "rename-limit", flags.RenameLimit, "highest suffix tried when renaming")

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&flags.Verbose, "verbose", "v", flags.Verbose, "log every step (or RAWBATCH_VERBOSE)")
	pf.StringVar(&flags.Dcraw, "dcraw", flags.Dcraw, "dcraw executable (default: RAWBATCH_DCRAW or dcraw)")

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.AddCommand(newInfoCmd(&flags))
	return cmd
}
