package cmd

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/config"
	"github.com/coffeeboi0811/glyphcam/internal/imgio"
)

var snapCmd = &cobra.Command{
	Use:   "snap <image> <output>",
	Short: "Export the ASCII rendering of an image as a picture",
	Long: `snap renders an image and paints the glyphs into a new picture. The output
format follows the extension of <output>. Animated GIFs produce one numbered
picture per frame (out-000.png, out-001.png, ...).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := loadPreset(cmd)
		if err != nil {
			return err
		}

		in, out := args[0], args[1]
		stderr := cmd.ErrOrStderr()
		infof(stderr, "📸 Loading image: %s\n", in)

		if strings.EqualFold(filepath.Ext(in), ".gif") {
			frames, err := imgio.LoadFrames(in)
			if err != nil {
				return fmt.Errorf("load animation: %w", err)
			}
			if len(frames) > 1 {
				return snapFrames(cmd, preset, frames, out)
			}
			return snapPicture(cmd, preset, imgio.Picture{Image: frames[0].Image}, out)
		}

		pic, err := imgio.Load(in)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		return snapPicture(cmd, preset, pic, out)
	},
}

func snapPicture(cmd *cobra.Command, preset config.Preset, pic imgio.Picture, out string) error {
	cfg, err := preset.RenderConfig(pic.Orientation)
	if err != nil {
		return err
	}
	if err := snapOne(cmd.Context(), preset, cfg, pic.Image, out); err != nil {
		return fmt.Errorf("export %s: %w", out, err)
	}
	okf(cmd.ErrOrStderr(), "✅ Saved %s\n", out)
	return nil
}

func snapFrames(cmd *cobra.Command, preset config.Preset, frames []imgio.Frame, out string) error {
	cfg, err := preset.RenderConfig(ascii.Upright)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	bar := progressbar.NewOptions(len(frames),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("rendering frames"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	for i, fr := range frames {
		path := imgio.NumberedPath(out, i)
		if err := snapOne(cmd.Context(), preset, cfg, fr.Image, path); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		bar.Add(1)
	}
	bar.Finish()
	okf(stderr, "✅ Saved %d frames as %s\n", len(frames), imgio.NumberedPath(out, 0))
	return nil
}

func snapOne(ctx context.Context, preset config.Preset, cfg ascii.Config, img image.Image, out string) error {
	c, err := ascii.RenderImage(ctx, imgio.Fit(img, preset.Width), cfg)
	if err != nil {
		return err
	}
	dst, err := ascii.Rasterize(ctx, c, cfg, ascii.RasterOptions{CellColor: preset.Color})
	if err != nil {
		return err
	}
	return imgio.Save(out, dst)
}

func init() {
	rootCmd.AddCommand(snapCmd)
}
