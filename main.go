// emoji-tactics is played in the local terminal. Click a highlighted cell
// (or move the cursor and press Enter) to move; capture a creature to take
// its movement.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"emoji-tactics/internal/client"
	"emoji-tactics/internal/game"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flag.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "Board size in cells")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client.Run(ctx, screen, game.New(cfg))
	return nil
}
