// The fastlife-bench command runs the simulation headless for a number of
// generations against the no-op display and reports the evolution rate.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"badge.team/fastlife/hal"
	"badge.team/fastlife/life"
	"badge.team/fastlife/valuestore"
)

func main() {
	generations := flag.Int("n", 100000, "number of generations to run")
	dump := flag.Bool("dump", false, "print the final board when done")
	flag.Parse()

	spinner := wow.New(os.Stdout, spin.Get(spin.Dots), " seeding the primordial soup...")
	spinner.Start()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	// Stagnation notices would trash the progress bar, so discard logs.
	game := life.New(hal.NopDisplay{}, valuestore.NewMemory(), log.New(io.Discard, "", 0), rng)
	// Run the first frame outside the measurement: it randomizes the board.
	game.Frame()

	spinner.PersistWith(spin.Spinner{Frames: []string{"+"}}, " board seeded")

	bar := pb.StartNew(*generations)
	start := time.Now()
	for i := 0; i < *generations; i++ {
		game.Frame()
		bar.Increment()
	}
	bar.Finish()

	elapsed := time.Since(start)
	fmt.Printf("%d generations in %v (%.2f generations/s)\n",
		*generations, elapsed.Round(time.Millisecond), float64(*generations)/elapsed.Seconds())

	if *dump {
		game.Board().Fprint(os.Stdout)
	}
}
