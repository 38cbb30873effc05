package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Brainhub24/netcider/internal/logger"
	"github.com/Brainhub24/netcider/internal/service"
)

var (
	showRange bool
	noColor   bool
	logLevel  string
	version   = "dev" // set at build time via -ldflags
)

func main() {
	// Setup logger
	log := logger.New()
	logger.SetGlobalLogger(log)

	vp := viper.New()
	vp.SetEnvPrefix("NETCIDER")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "netcider [flags] [CIDR...]",
		Short: "IPv4 subnet calculator for CIDR notation",
		Long: `Calculates netmask, wildcard, broadcast, subnet ID, host range and address
count for IPv4 subnets given in CIDR notation (e.g. 192.168.0.2/24).

Subnets are read from positional arguments, or one per line from stdin when
piped. Each subnet is processed independently; a malformed input is reported
and the rest of the batch still runs.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Reconfigure logger from flags and NETCIDER_* env
			log = logger.NewWithLevel(vp.GetString("log-level"), vp.GetBool("no-color"))
			logger.SetGlobalLogger(log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, vp)
		},
	}

	rootCmd.Flags().BoolVarP(&showRange, "output-range", "o", false, "Print every address of each subnet, one per line")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	vp.BindPFlag("output-range", rootCmd.Flags().Lookup("output-range"))
	vp.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	vp.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string, vp *viper.Viper) error {
	log := logger.Global()

	inputs := args
	if len(inputs) == 0 {
		if stdinIsTerminal() {
			// Nothing to do: no arguments and no pipe.
			return cmd.Help()
		}

		inputSvc := service.NewInputService(log.Logger)
		lines, err := inputSvc.Read(os.Stdin)
		if err != nil {
			return err
		}
		inputs = lines
	}

	if len(inputs) == 0 {
		log.Warn().Msg("No subnets supplied")
		return nil
	}

	renderer := service.NewRenderService(log.Logger, cmd.OutOrStdout(), vp.GetBool("no-color"))
	batch := service.NewBatchService(log.Logger, renderer, vp.GetBool("output-range"))

	report := batch.Run(inputs)
	if report.FailCount() > 0 {
		log.Warn().
			Int("failed", report.FailCount()).
			Int("total", report.TotalCount()).
			Msg("Some inputs could not be parsed")
	}

	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
