// Package main provides the uuidgen CLI tool for generating version 4 UUIDs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	uuidv4 "github.com/jdziat/uuidv4-go"
	"github.com/jdziat/uuidv4-go/internal/cli"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		count      int
		seed       uint64
		software   bool
		format     string
		verbose    bool
		showStats  bool
	)

	root := &cobra.Command{
		Use:   "uuidgen",
		Short: "Generate random version 4 UUIDs",
		Long: `uuidgen generates version 4 UUIDs using hardware entropy when the CPU
supports it (RDRAND, RDSEED) and a seedable software engine otherwise.

Settings can come from a .uuidgen.yaml file, environment variables
(UUIDGEN_FORMAT, UUIDGEN_SOFTWARE_ONLY) or flags; flags win.`,
		Version:      uuidv4.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("count") {
				cfg.Count = count
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = &seed
			}
			if cmd.Flags().Changed("software") {
				cfg.SoftwareOnly = software
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = cli.Format(format)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := cfg.Options()
			if verbose {
				logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				opts = append(opts, uuidv4.WithLogger(uuidv4.NewSlogAdapter(logger)))
			}

			gen, err := uuidv4.New(opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < cfg.Count; i++ {
				fmt.Fprintln(out, cfg.Format.Render(gen.Next()))
			}

			if showStats {
				stats := gen.Stats()
				fmt.Fprintf(cmd.ErrOrStderr(),
					"hardware=%d software=%d seed_fallbacks=%d hardware_misses=%d\n",
					stats.Hardware, stats.Software, stats.SeedFallbacks, stats.HardwareMisses)
			}
			return nil
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "config file path (default: search for .uuidgen.yaml)")
	root.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	root.Flags().Uint64Var(&seed, "seed", 0, "deterministic seed for the software engine")
	root.Flags().BoolVar(&software, "software", false, "skip hardware entropy even when available")
	root.Flags().StringVarP(&format, "format", "f", string(cli.FormatCanonical), "output format: canonical, hex or urn")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log generator diagnostics to stderr")
	root.Flags().BoolVar(&showStats, "stats", false, "print draw statistics to stderr")

	root.AddCommand(featuresCommand())

	return root
}
