// Command annealplan prints the epsilon-scaling plans of YAML schedule files.
//
//	annealplan [-log-level info] [-format text|yaml] FILE...
//
// Files are planned concurrently. Exit codes: 0 on success, 2 on usage
// errors, 1 when a file cannot be read or describes an invalid schedule.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/katalvlaran/otanneal/annealing"
	"github.com/katalvlaran/otanneal/config"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// report is one planned file.
type report struct {
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode"`
	Diameter float64   `yaml:"diameter"`
	NIter    int       `yaml:"n_iter"`
	Blur     []float64 `yaml:"blur"`
	Eps      []float64 `yaml:"eps"`
	Rho      []float64 `yaml:"rho"`
	Jumps    []int     `yaml:"jumps"`
}

// run plans every file named in args and writes the reports to out in
// argument order. Logs go to logW.
func run(out, logW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, out)
	if err != nil || shouldExit {
		return err
	}

	logger := zerolog.New(logW).Level(opts.level).With().Timestamp().Logger()
	planner, err := annealing.NewPlanner(annealing.WithLogger(logger))
	if err != nil {
		return err
	}

	reports, err := planAll(context.Background(), planner, logger, opts.files)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	if opts.format == formatYAML {
		return writeYAML(out, reports)
	}

	return writeText(out, reports)
}

// planAll loads and plans the files concurrently. The first failure cancels
// the files not yet started.
func planAll(ctx context.Context, planner *annealing.Planner, logger zerolog.Logger, files []string) ([]report, error) {
	reports := make([]report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		i, path := i, path // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			plan, err := s.Plan(planner)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			reports[i] = newReport(s, plan)
			logger.Info().
				Str("file", path).
				Int("n_iter", plan.Iterations()).
				Ints("jumps", plan.Jumps).
				Msg("annealplan: planned")

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("annealplan: planning failed")

		return nil, err
	}

	return reports, nil
}

func newReport(s *config.Schedule, plan annealing.DescentParameters) report {
	return report{
		Name:     s.Name,
		Mode:     annealing.ModeOf(s.Options()...).String(),
		Diameter: plan.Diameter,
		NIter:    plan.Iterations(),
		Blur:     plan.BlurList,
		Eps:      plan.EpsList,
		Rho:      plan.RhoList,
		Jumps:    plan.Jumps,
	}
}

// writeYAML emits one YAML document per report.
func writeYAML(w io.Writer, reports []report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	return enc.Close()
}

// writeText prints an aligned table per report; a '*' marks the iterations
// after which a multiscale solver jumps to the next scale.
func writeText(w io.Writer, reports []report) error {
	for k, r := range reports {
		if k > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s (mode=%s, diameter=%g, n_iter=%d, jumps=%v)\n", r.Name, r.Mode, r.Diameter, r.NIter, r.Jumps)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "i\tblur\teps\trho\tjump")
		jumps := make(map[int]bool, len(r.Jumps))
		for _, j := range r.Jumps {
			jumps[j] = true
		}
		for i := range r.Blur {
			mark := ""
			if jumps[i] {
				mark = "*"
			}
			fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%g\t%s\n", i, r.Blur[i], r.Eps[i], r.Rho[i], mark)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	return nil
}
