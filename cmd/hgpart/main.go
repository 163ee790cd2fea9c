// Command hgpart partitions a .hgr hypergraph file to minimize the KM1
// connectivity objective under a balance constraint, per §6.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/hgpart/enginecfg"
	"github.com/katalvlaran/hgpart/engine"
	"github.com/katalvlaran/hgpart/hmetis"
	"github.com/katalvlaran/hgpart/hypergraph"
)

// Exit codes per §6.
const (
	exitOK         = 0
	exitInputError = 2
	exitParamError = 3
	exitInfeasible = 4
	exitCancelled  = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("hgpart", flag.ContinueOnError)
	var (
		k           = fs.Int("k", 2, "number of partition blocks")
		eps         = fs.Float64("epsilon", 0.03, "balance tolerance")
		seed        = fs.Int64("seed", 1, "RNG seed")
		effort      = fs.Int("effort", enginecfg.DefaultEffort, "effort preset 0..5")
		refinement  = fs.Int("refinement", 0, "total refinement iterations (overrides -effort)")
		tabuTenure  = fs.Int("tabu-tenure", enginecfg.DefaultTabuTenure, "initial tabu tenure")
		quotaAlpha  = fs.Float64("quota-alpha", enginecfg.DefaultQuotaAlpha0, "initial quota fraction")
		perturbRho  = fs.Float64("perturb-rho", enginecfg.DefaultPerturbRho0, "initial perturbation fraction")
		ilsRound    = fs.Int("ils-round", enginecfg.DefaultIlsRoundLength, "ILS round length r")
		stallLimit  = fs.Int("stall-limit", enginecfg.DefaultStallLimit, "plateau detection threshold")
		out         = fs.String("out", "", "partition output path (required)")
		timingOut   = fs.String("timing-out", "", "timing sidecar output path (optional)")
		verbose     = fs.Bool("verbose", false, "log progress via the standard logger")
	)
	if err := fs.Parse(args); err != nil {
		return exitParamError
	}
	if fs.NArg() != 1 || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: hgpart -out=PATH [flags] input.hgr")
		return exitParamError
	}

	parsed, err := hmetis.ParseFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "hgpart:", err)
		return exitInputError
	}
	h, err := hypergraph.Build(parsed.N, parsed.Edges)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hgpart:", err)
		return exitInputError
	}

	opts, optErr := buildOptions(*effort, *tabuTenure, *quotaAlpha, *perturbRho, *ilsRound, *stallLimit, *verbose)
	if optErr != nil {
		fmt.Fprintln(os.Stderr, "hgpart:", optErr)
		return exitParamError
	}

	assign, km1, feasible, elapsed, err := engine.Partition(h, *k, *eps, *seed, *refinement, opts...)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInput):
			fmt.Fprintln(os.Stderr, "hgpart:", err)
			return exitInputError
		case errors.Is(err, engine.ErrParameter):
			fmt.Fprintln(os.Stderr, "hgpart:", err)
			return exitParamError
		case errors.Is(err, engine.ErrCancelled):
			fmt.Fprintln(os.Stderr, "hgpart: cancelled:", err)
			writeOutputs(*out, *timingOut, assign, elapsed)
			return exitCancelled
		case errors.Is(err, engine.ErrInfeasible):
			fmt.Fprintln(os.Stderr, "hgpart:", err)
			return exitInfeasible
		default:
			fmt.Fprintln(os.Stderr, "hgpart:", err)
			return exitInfeasible
		}
	}
	if !feasible {
		fmt.Fprintln(os.Stderr, "hgpart: partition is not feasible")
		return exitInfeasible
	}

	if err := writeOutputs(*out, *timingOut, assign, elapsed); err != nil {
		fmt.Fprintln(os.Stderr, "hgpart:", err)
		return exitInfeasible
	}

	fmt.Printf("km1=%d elapsed=%s\n", km1, elapsed)
	return exitOK
}

// buildOptions assembles the enginecfg.Option set from CLI flags. Option
// constructors panic on out-of-domain input (they are meant for programmer
// error, not end-user error; see package enginecfg), but these values came from the
// command line, so a panic here is recovered and reported as an ordinary
// parameter error instead of crashing the process.
func buildOptions(effort, tabuTenure int, quotaAlpha, perturbRho float64, ilsRound, stallLimit int, verbose bool) (opts []enginecfg.Option, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts, err = nil, fmt.Errorf("invalid configuration: %v", r)
		}
	}()

	opts = []enginecfg.Option{
		enginecfg.WithEffort(effort),
		enginecfg.WithTabuTenure(int32(tabuTenure), enginecfg.DefaultTabuTenureFloor),
		enginecfg.WithQuotaAlpha(quotaAlpha, enginecfg.DefaultQuotaAlphaFloor),
		enginecfg.WithPerturbRho(perturbRho, enginecfg.DefaultPerturbRhoFloor),
		enginecfg.WithIlsRoundLength(ilsRound),
		enginecfg.WithStallLimit(stallLimit),
		enginecfg.WithContext(context.Background()),
	}
	if verbose {
		opts = append(opts, enginecfg.WithLogf(log.Printf))
	}
	return opts, nil
}

func writeOutputs(out, timingOut string, assign []uint8, elapsed time.Duration) error {
	if err := hmetis.WritePartition(out, assign); err != nil {
		return err
	}
	if timingOut == "" {
		return nil
	}
	return hmetis.WriteTiming(timingOut, elapsed)
}
