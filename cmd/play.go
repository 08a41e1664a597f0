package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/coffeeboi0811/glyphcam/ascii"
	"github.com/coffeeboi0811/glyphcam/internal/imgio"
	"github.com/coffeeboi0811/glyphcam/internal/live"
)

var playLoops int

var playCmd = &cobra.Command{
	Use:   "play <gif>",
	Short: "Play an animated GIF as ASCII art",
	Long: `play renders every frame of an animation as it is due. When rendering falls
behind, stale frames are skipped so the preview stays in time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := loadPreset(cmd)
		if err != nil {
			return err
		}
		cfg, err := preset.RenderConfig(ascii.Upright)
		if err != nil {
			return err
		}

		stderr := cmd.ErrOrStderr()
		infof(stderr, "🎞️  Loading animation: %s\n", args[0])
		frames, err := imgio.LoadFrames(args[0])
		if err != nil {
			return fmt.Errorf("load animation: %w", err)
		}

		out := cmd.OutOrStdout()
		f, _ := out.(*os.File)
		width := showWidth(preset, cfg, f)
		clips := make([]clip, len(frames))
		for i, fr := range frames {
			clips[i] = clip{
				frame: ascii.FrameFromImage(imgio.Fit(fr.Image, width)),
				delay: fr.Delay,
			}
		}
		useColor := preset.Color && f != nil && isTerminal(f)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		ch := make(chan ascii.Frame)
		go feed(ctx, clips, playLoops, ch)

		screen := bufio.NewWriter(out)
		screen.WriteString(clearScreen)
		var (
			shown    int
			writeErr error
		)
		p := live.New(cfg)
		err = p.Run(ctx, ch, func(r live.Result) {
			if r.Err != nil {
				ascii.Logger().Warn("play: frame failed", "seq", r.Seq, "err", r.Err)
				return
			}
			if writeErr != nil {
				return
			}
			if writeErr = drawFrame(screen, r.Canvas, useColor); writeErr != nil {
				cancel()
				return
			}
			shown++
		})
		screen.Flush()
		if writeErr != nil {
			return fmt.Errorf("write frame: %w", writeErr)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		okf(stderr, "✅ Played %d frames, skipped %d\n", shown, p.Dropped())
		return nil
	},
}

// clip is a prepared animation frame.
type clip struct {
	frame ascii.Frame
	delay time.Duration
}

// feed sends the clips to ch, each after the previous one's delay, and
// closes ch when done. loops <= 0 repeats until ctx is done.
func feed(ctx context.Context, clips []clip, loops int, ch chan<- ascii.Frame) {
	defer close(ch)
	for n := 0; loops <= 0 || n < loops; n++ {
		for _, c := range clips {
			select {
			case ch <- c.frame:
			case <-ctx.Done():
				return
			}
			t := time.NewTimer(c.delay)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
				return
			}
		}
		if len(clips) == 0 {
			return
		}
	}
}

func drawFrame(w *bufio.Writer, c *ascii.Canvas, useColor bool) error {
	w.WriteString(cursorHome)
	if err := writeCanvas(w, c, useColor); err != nil {
		return err
	}
	w.WriteString(clearToEnd)
	return w.Flush()
}

func init() {
	playCmd.Flags().IntVar(&playLoops, "loops", 1, "how many times to play the animation, 0 repeats forever")
	rootCmd.AddCommand(playCmd)
}
