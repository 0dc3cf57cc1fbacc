package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jumpboy/internal/core"
	"github.com/vovakirdan/jumpboy/internal/games/jumpboy"
	"github.com/vovakirdan/jumpboy/internal/platform/tui"
	"github.com/vovakirdan/jumpboy/internal/registry"
	"github.com/vovakirdan/jumpboy/internal/storage"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jump Boy",
	Long: `Start Jump Boy in this terminal.

Controls:
  Space/Up/Enter - Jump (keep pressing to jump higher), confirm
  P/Esc          - Pause
  B              - Leave the game
  Q/Ctrl+C       - Quit
  Ctrl+S         - Save a screenshot

The current mode and the score board are saved between sessions.

Examples:
  jumpboy play
  jumpboy play --mode hard
  jumpboy play --stage 7 --seed 42
  jumpboy play --config ./my-stages.yaml --log-file jumpboy.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", true, "Ring the terminal bell on damage, game over and stage clear")
}

func runPlay(_ *cobra.Command, _ []string) error {
	id, err := gameID()
	if err != nil {
		return err
	}
	applyGameFlags()

	snapshots, err := storage.OpenSnapshots("jumpboy", id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save data: %v\n", err)
		jumpboy.SetPersister(nil)
	} else {
		jumpboy.SetPersister(snapshots)
	}

	if flagBell {
		jumpboy.SetAudio(jumpboy.BellAudio{Ring: func() {
			fmt.Fprint(os.Stderr, "\a")
		}})
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(),
		Seed:     flagSeed,
	}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
