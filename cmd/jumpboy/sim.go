package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/games/jumpboy"
	"github.com/vovakirdan/jumpboy/internal/registry"
	"github.com/vovakirdan/jumpboy/internal/storage"
)

var (
	flagFrames    int
	flagJumpEvery int
	flagEvery     int
	flagRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run Jump Boy without a terminal UI and print the state as it goes.

By default an autopilot jumps whenever a ball rolls close and presses
confirm through the menus. --jump-every N replaces it with a press every
N frames. The same --seed always produces the same run.

Examples:
  jumpboy sim --frames 3000 --seed 7
  jumpboy sim --jump-every 25 --every 30
  jumpboy sim --mode hard --stage 12 --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 1800, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press confirm every N frames (0 = autopilot)")
	simCmd.Flags().IntVar(&flagEvery, "every", 0, "Print the state every N frames (0 = scene changes only)")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished runs to the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	id, err := gameID()
	if err != nil {
		return err
	}
	applyGameFlags()
	jumpboy.SetPersister(nil)

	g, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	game, ok := g.(*jumpboy.Game)
	if !ok {
		return fmt.Errorf("game %q is not a jumpboy game", id)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate(), Seed: seed})

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("open scores database: %w", err)
		}
		defer store.Close()
	}

	var pilot func(frame int) core.InputFrame
	if flagJumpEvery > 0 {
		pilot = everyN(flagJumpEvery)
	} else {
		pilot = newAutopilot(game).input
	}

	fmt.Printf("Simulating %s for %d frames (seed %d)\n", game.Title(), flagFrames, seed)
	res := simulate(game, flagFrames, flagEvery, pilot, os.Stdout)
	for _, run := range res.runs {
		if store == nil {
			continue
		}
		if _, err := store.SaveScore(game.ID(), run.Mode, run.Stage, run.Point); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
		}
	}
	fmt.Printf("Done after %d frames (%d ms): %d finished runs, best %d\n",
		flagFrames, game.FrameMs(), len(res.runs), res.best)
	return nil
}

type simResult struct {
	runs []core.RunResult
	best int
}

// simulate steps the game for frames frames and writes a line for each
// scene change, each finished run and, when every > 0, every Nth frame.
func simulate(game *jumpboy.Game, frames, every int, pilot func(int) core.InputFrame, out io.Writer) simResult {
	var res simResult
	lastScene := ""
	for f := 0; f < frames; f++ {
		step := game.Step(pilot(f))
		st := step.State

		if st.Scene != lastScene || (every > 0 && f%every == 0) {
			fmt.Fprintln(out, stateLine(f, game, st))
			lastScene = st.Scene
		}
		if step.Finished != nil {
			res.runs = append(res.runs, *step.Finished)
			if step.Finished.Point > res.best {
				res.best = step.Finished.Point
			}
			fmt.Fprintf(out, "%6d  finished  mode %d stage %d point %d\n",
				f, step.Finished.Mode+1, step.Finished.Stage+1, step.Finished.Point)
		}
	}
	return res
}

func stateLine(frame int, game *jumpboy.Game, st core.GameState) string {
	life, action := 0, "-"
	balls := 0
	if snap := game.Snapshot(); snap != nil {
		if snap.Jumper != nil {
			life = snap.Jumper.Life()
			action = snap.Jumper.Action().String()
		}
		balls = len(snap.Balls)
	}
	return fmt.Sprintf("%6d  %-11s  level %d-%-2d  score %-5d  life %d  jumper %-9s  balls %d",
		frame, st.Scene, st.Mode+1, st.Stage+1, st.Score, life, action, balls)
}

func everyN(n int) func(int) core.InputFrame {
	return func(frame int) core.InputFrame {
		in := core.NewInputFrame()
		if frame%n == 0 {
			in.Set(core.ActionConfirm)
		}
		return in
	}
}

// autopilot jumps when a spinning ball rolls within reach and keeps the
// button held while rising. Outside of play it presses confirm twice a
// second to move through the menus.
type autopilot struct {
	game  *jumpboy.Game
	reach float64
}

func newAutopilot(game *jumpboy.Game) *autopilot {
	return &autopilot{game: game, reach: 28}
}

func (a *autopilot) input(frame int) core.InputFrame {
	in := core.NewInputFrame()
	scene := a.game.State().Scene
	if scene != "play" {
		if frame%15 == 0 && scene != "pause" {
			in.Set(core.ActionConfirm)
		}
		return in
	}

	j := a.game.Snapshot().Jumper
	if j == nil {
		return in
	}
	if j.Jumping() && !j.Descending() {
		in.Set(core.ActionHold)
		return in
	}
	if j.StandingBy() && a.ballApproaching(j.Center().X) {
		in.Set(core.ActionConfirm)
	}
	return in
}

func (a *autopilot) ballApproaching(x float64) bool {
	for _, b := range a.game.Snapshot().Balls {
		if !b.Spinning() {
			continue
		}
		cx := b.Box().Center().X
		if b.SpinRight && cx < x && x-cx < a.reach {
			return true
		}
		if !b.SpinRight && cx > x && cx-x < a.reach {
			return true
		}
	}
	return false
}
