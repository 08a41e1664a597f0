package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/config"
	"github.com/coffeeboi0811/glyphcam/internal/imgio"
)

var showCmd = &cobra.Command{
	Use:   "show <image>",
	Short: "Render an image in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := loadPreset(cmd)
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		imagePath := args[0]
		infof(stderr, "📸 Loading image: %s\n", imagePath)

		pic, err := imgio.Load(imagePath)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		infof(stderr, "✅ Image loaded successfully! Format: %s, Size: %dx%d\n",
			pic.Format, pic.Image.Bounds().Dx(), pic.Image.Bounds().Dy())

		cfg, err := preset.RenderConfig(pic.Orientation)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		f, _ := out.(*os.File)
		img := imgio.Fit(pic.Image, showWidth(preset, cfg, f))

		c, err := ascii.RenderImage(cmd.Context(), img, cfg)
		if err != nil {
			return fmt.Errorf("render image: %w", err)
		}
		return writeCanvas(out, c, preset.Color && f != nil && isTerminal(f))
	},
}

// showWidth is the source width that fills the terminal with one glyph per
// tile. An explicit preset width wins; output that is not a terminal keeps
// the full image.
func showWidth(p config.Preset, cfg ascii.Config, out *os.File) uint {
	if p.Width > 0 {
		return p.Width
	}
	if out == nil || !isTerminal(out) || cfg.Orientation.SwapsAxes() {
		return 0
	}
	return uint(terminalColumns(out) * cfg.TileSize)
}

func init() {
	rootCmd.AddCommand(showCmd)
}
