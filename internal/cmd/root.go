package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/denis-bt/sync-core-visualization/internal/logging"
)

var cfgFile string

// rootCmd reads logs, extracts series and writes the chart page.
var rootCmd = &cobra.Command{
	Use:   "syncviz [files...]",
	Short: "syncviz — plot sync core networking stats from logs",
	Long: `syncviz extracts numeric series from sync core log lines (UDP event loop
timing, uTP ack stats, peer connection queues and piece RTTs) and renders them
as a grid of interactive line charts in a single HTML page.

Logs are read from stdin unless files or glob patterns are given.

Examples:
  syncviz < sync.log
  syncviz "logs/**/*.log" -o report.html
  syncviz sync.log --format json`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(cmd.ErrOrStderr(), viper.GetString("log_level"))
	},
	RunE: runPlot,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "syncviz:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.syncviz.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")

	f := rootCmd.Flags()
	f.StringP("output", "o", "", "output file (default: out.html, or out.json with --format json)")
	f.StringP("format", "f", "html", "output format: html, json")
	f.Bool("summary", true, "print an extraction summary to stderr")
	f.String("title", "", "page title")
	f.String("height", "", "height of each chart panel (CSS length)")
	f.String("theme", "", "echarts theme name (themes other than syncviz are loaded from --assets-host)")
	f.String("assets-host", "", "URL for scripts that are not embedded in the binary")

	bind(pf, "log_level", "log-level")
	for _, name := range []string{"output", "format", "summary", "title", "height", "theme", "assets-host"} {
		bind(f, strings.ReplaceAll(name, "-", "_"), name)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".syncviz")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("syncviz")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "syncviz: config:", err)
			os.Exit(1)
		}
	}
}
