package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"plinkotone/internal/physics"
	"plinkotone/internal/sims/plinko"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	frames := flag.Int("frames", 3600, "frames to simulate per run at 60 fps")
	dropEvery := flag.Int("drop-every", 6, "drop a marble every N frames")
	runs := flag.Int("runs", 8, "number of seeds to run")
	seed := flag.Int64("seed", 42, "first seed; runs use consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	var overrides kvList
	flag.Var(&overrides, "set", "session override in key=value form (repeatable): w, h, preset, scale, gravity")
	flag.Parse()

	values := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(os.Stderr, "ignoring malformed override %q\n", kv)
			continue
		}
		values[parts[0]] = parts[1]
	}
	cfg := plinko.FromMap(values)

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}
	results := plinko.BenchSweep(cfg, seeds, *frames, *dropEvery, *workers)

	fmt.Printf("preset %s, scale %s, gravity %.2f, %dx%d, %d frames, drop every %d\n\n",
		cfg.Preset, cfg.Scale, cfg.Gravity, cfg.Width, cfg.Height, *frames, *dropEvery)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "seed\tdrops\tpeak\tfinal\thits\tsplits\tculled\tevicted\t")
	var total plinko.Stats
	for _, r := range results {
		s := r.Stats
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			r.Seed, r.Drops, s.Peak, r.FinalMarbles, s.Collisions, s.Spawned, s.Culled, s.Evicted)
		total.Collisions += s.Collisions
		total.Spawned += s.Spawned
		total.Culled += s.Culled
		total.Evicted += s.Evicted
		if s.Peak > total.Peak {
			total.Peak = s.Peak
		}
	}
	tw.Flush()

	n := float64(len(results))
	if n == 0 {
		return
	}
	fmt.Printf("\npeak population %d (cap %d)\n", total.Peak, physics.MaxMarbles)
	fmt.Printf("mean per run: %.1f hits, %.1f splits, %.1f culled, %.1f evicted\n",
		float64(total.Collisions)/n, float64(total.Spawned)/n, float64(total.Culled)/n, float64(total.Evicted)/n)
}
