package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/pavanmanishd/vector"
)

// workload drives a vector of int64: fill runs once per element, drain (if
// set) runs until the vector is empty.
type workload struct {
	help  string
	fill  func(v *vector.Vector[int64], i int) error
	drain func(v *vector.Vector[int64]) error
}

var workloads = map[string]workload{
	"append": {
		help: "Append --count values.",
		fill: appendStep,
	},
	"insert": {
		help: "Insert --count values at the front.",
		fill: insertFrontStep,
	},
	"erase": {
		help:  "Append --count values, then erase them all from the front.",
		fill:  appendStep,
		drain: eraseFrontStep,
	},
	"growth": {
		help: "Append --count values and print every capacity the vector grew to.",
		fill: appendStep,
	},
}

func appendStep(v *vector.Vector[int64], i int) error {
	return v.PushBack(int64(i))
}

func insertFrontStep(v *vector.Vector[int64], i int) error {
	_, err := v.Insert(0, int64(i))
	return err
}

func eraseFrontStep(v *vector.Vector[int64]) error {
	_, err := v.Erase(0)
	return err
}

// result summarizes one workload run.
type result struct {
	Name       string
	Count      int
	Duration   time.Duration
	Peak       vector.Metrics // at the end of the fill phase
	Final      vector.Metrics
	Capacities []int // capacity after each reallocation
}

func (r result) Reallocations() int {
	return len(r.Capacities)
}

// runWorkload runs the named workload with count elements on a vector
// reserved to reserve slots.
func runWorkload(logger log.Logger, name string, count, reserve int) (result, error) {
	w, ok := workloads[name]
	if !ok {
		return result{}, errors.Newf("unknown workload %q", name)
	}
	if count < 0 {
		return result{}, errors.Newf("count must not be negative, got %d", count)
	}

	v := vector.New[int64]()
	defer v.Release()
	if err := v.Reserve(reserve); err != nil {
		return result{}, errors.Wrapf(err, "reserving %d slots", reserve)
	}

	res := result{Name: name, Count: count}
	lastCap := v.Cap()
	observe := func() {
		if c := v.Cap(); c != lastCap {
			level.Debug(logger).Log("msg", "reallocated", "len", v.Len(), "old_cap", lastCap, "new_cap", c)
			res.Capacities = append(res.Capacities, c)
			lastCap = c
		}
	}

	level.Info(logger).Log("msg", "starting workload", "workload", name, "count", count, "reserve", reserve)
	start := time.Now()
	for i := 0; i < count; i++ {
		if err := w.fill(v, i); err != nil {
			return result{}, errors.Wrapf(err, "%s: element %d", name, i)
		}
		observe()
	}
	res.Peak = v.Metrics()
	if w.drain != nil {
		for !v.Empty() {
			if err := w.drain(v); err != nil {
				return result{}, errors.Wrapf(err, "%s: draining at length %d", name, v.Len())
			}
		}
	}
	res.Duration = time.Since(start)
	res.Final = v.Metrics()
	level.Info(logger).Log("msg", "workload finished", "workload", name, "duration", res.Duration, "reallocations", res.Reallocations())
	return res, nil
}

// printResult writes a human readable summary of res.
func printResult(w io.Writer, res result, withCapacities bool) {
	bold := color.New(color.Bold)
	bold.Fprintln(w, "Workload:")
	fmt.Fprintf(w, "\tname: %s, elements: %s, duration: %v\n",
		res.Name, humanize.Comma(int64(res.Count)), res.Duration)
	fmt.Fprintf(w, "\tpeak: len %d, cap %d, %v in use of %v (%.1f%%)\n",
		res.Peak.Len, res.Peak.Cap,
		humanize.IBytes(uint64(res.Peak.SizeInUse)),
		humanize.IBytes(uint64(res.Peak.CapacityBytes)),
		res.Peak.Utilization*100)
	fmt.Fprintf(w, "\tfinal: len %d, cap %d, reallocations: %d\n",
		res.Final.Len, res.Final.Cap, res.Reallocations())

	if withCapacities {
		bold.Fprintln(w, "Capacities:")
		caps := make([]string, 0, len(res.Capacities))
		for _, c := range res.Capacities {
			caps = append(caps, fmt.Sprint(c))
		}
		fmt.Fprintf(w, "\t%s\n", strings.Join(caps, ", "))
	}
}

// workloadCommand runs one workload from the command line.
type workloadCommand struct {
	cfg   *config
	name  string
	count int
}

func (cmd *workloadCommand) run(_ *kingpin.ParseContext) error {
	if cmd.cfg.noColor {
		color.NoColor = true
	}
	res, err := runWorkload(newLogger(cmd.cfg.logLevel), cmd.name, cmd.count, cmd.cfg.reserve)
	if err != nil {
		return err
	}
	printResult(os.Stdout, res, cmd.name == "growth")
	return nil
}

func addWorkloadCommands(app *kingpin.Application, cfg *config) {
	for _, name := range slices.Sorted(maps.Keys(workloads)) {
		cmd := &workloadCommand{cfg: cfg, name: name}
		c := app.Command(name, workloads[name].help).Action(cmd.run)
		c.Flag("count", "Number of elements.").Short('n').Default("1000").IntVar(&cmd.count)
	}
}
