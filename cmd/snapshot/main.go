// Command snapshot runs a simulation headlessly: advance a number of
// generations, optionally show a paced ASCII playback, and write the final
// state as a two-tone PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"ca-lab/internal/app"
	"ca-lab/internal/core"
	"ca-lab/internal/render"
	_ "ca-lab/internal/sims/elementary"
	_ "ca-lab/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 240, "generations to simulate")
	out := flag.String("out", "", "write the final state to this PNG file")
	play := flag.Bool("play", false, "print an ASCII frame per generation, paced at -tps")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.Opts)
	if err != nil {
		log.Fatalf("constructing %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	start := time.Now()
	if *play {
		pacer := core.NewFixedStep(cfg.TPS)
		for done := 0; done < *steps; {
			if !pacer.ShouldStep() {
				time.Sleep(time.Millisecond)
				continue
			}
			sim.Step()
			done++
			printFrame(sim, done)
		}
	} else {
		for i := 0; i < *steps; i++ {
			sim.Step()
		}
	}
	fmt.Printf("%s: %d generations in %v\n", sim.Name(), *steps, time.Since(start).Round(time.Millisecond))

	if *out == "" {
		return
	}
	size := sim.Size()
	img := render.Snapshot(sim.Cells(), size.W, size.H, color.Black, color.White)
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating %s: %v", *out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encoding %s: %v", *out, err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, size.W, size.H)
}

// printFrame writes the grid to stdout with '#' for live cells, preceded by
// a cursor-home escape so paced playback redraws in place.
func printFrame(sim core.Sim, generation int) {
	size := sim.Size()
	cells := sim.Cells()
	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	fmt.Fprintf(&b, "%s gen %d\n", sim.Name(), generation)
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : (y+1)*size.W]
		for _, c := range row {
			if c != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	os.Stdout.WriteString(b.String())
}
