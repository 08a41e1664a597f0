package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/config"
	"github.com/coffeeboi0811/glyphcam/internal/log"
)

var (
	presetPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "glyphcam",
	Short: "Turn pictures and animations into ASCII art",
	Long: `glyphcam samples one pixel per square tile, maps its brightness to a glyph
and prints the result, exports it as a picture, or plays animations as a live preview.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ascii.SetLogger(log.Setup(logLevel, cmd.ErrOrStderr()))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&presetPath, "config", "", "render preset file (.toml, .yaml or .yml)")
	pf.StringVar(&logLevel, "log-level", "warn", "trace, debug, info, warn or error")
	config.Register(pf)
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		errorf(rootCmd.ErrOrStderr(), "❌ %v\n", err)
		os.Exit(1)
	}
}

// loadPreset reads the --config file, if any, and applies the flags set on cmd.
func loadPreset(cmd *cobra.Command) (config.Preset, error) {
	p := config.Default()
	if presetPath != "" {
		var err error
		if p, err = config.Load(presetPath); err != nil {
			return p, err
		}
	}
	return config.Merge(p, cmd.Flags())
}

var (
	infof  = color.New(color.FgCyan).FprintfFunc()
	okf    = color.New(color.FgGreen).FprintfFunc()
	errorf = color.New(color.FgRed).FprintfFunc()
)
