package optimizer

import (
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"
)

// successStatuses are the gonum termination statuses treated as convergence.
var successStatuses = map[optimize.Status]bool{
	optimize.Success:             true,
	optimize.GradientThreshold:   true,
	optimize.FunctionConvergence: true,
}

// Gonum minimizes with gonum/optimize. Gradients are central finite
// differences whose evaluations run concurrently, so the objective must be
// safe for concurrent use.
type Gonum struct {
	opts Options
	log  zerolog.Logger
}

// NewGonum creates a minimizer. A nil opts uses DefaultOptions.
func NewGonum(opts *Options, log zerolog.Logger) (*Gonum, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	method, err := ParseMethod(opts.Method)
	if err != nil {
		return nil, err
	}

	o := *opts
	o.Method = method
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultOptions().MaxIter
	}
	if o.FunctionIters <= 0 {
		o.FunctionIters = DefaultOptions().FunctionIters
	}

	return &Gonum{
		opts: o,
		log:  log.With().Str("component", "optimizer").Logger(),
	}, nil
}

// Minimize implements Minimizer.
func (g *Gonum) Minimize(f Objective, start []float64) (*Result, error) {
	if len(start) == 0 {
		return nil, ErrEmptyStart
	}

	fn := func(x []float64) float64 {
		v := f(x)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}
	problem := optimize.Problem{
		Func: fn,
		Grad: func(grad, x []float64) {
			fd.Gradient(grad, fn, x, &fd.Settings{Formula: fd.Central, Concurrent: true})
			for i, v := range grad {
				if math.IsNaN(v) {
					grad[i] = 0
				}
			}
		},
	}

	res := g.run(problem, start, g.opts.Method)
	if res.Converged || !g.opts.Fallback || g.opts.Method == MethodNelderMead {
		return res, nil
	}

	g.log.Debug().
		Str("method", res.Method).
		Str("status", res.Status).
		Float64("f", res.F).
		Msg("gradient method did not converge, falling back to Nelder-Mead")

	nm := g.run(problem, res.X, MethodNelderMead)
	nm.Iterations += res.Iterations
	nm.FuncEvaluations += res.FuncEvaluations
	if nm.F <= res.F {
		return nm, nil
	}
	res.Iterations, res.FuncEvaluations = nm.Iterations, nm.FuncEvaluations
	return res, nil
}

// run performs one gonum minimization and never returns a point worse than
// start.
func (g *Gonum) run(problem optimize.Problem, start []float64, method string) *Result {
	fStart := problem.Func(start)
	out := &Result{
		X:      append([]float64(nil), start...),
		F:      fStart,
		Method: method,
	}

	settings := &optimize.Settings{
		GradientThreshold: g.opts.GradientTol,
		MajorIterations:   g.opts.MaxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   g.opts.FunctionTol,
			Relative:   g.opts.FunctionTol,
			Iterations: g.opts.FunctionIters,
		},
	}

	var m optimize.Method
	switch method {
	case MethodLBFGS:
		m = &optimize.LBFGS{}
	case MethodNelderMead:
		m = &optimize.NelderMead{}
		settings.MajorIterations = g.opts.MaxIter * len(start)
		settings.Converger = &optimize.FunctionConverge{
			Absolute:   g.opts.FunctionTol,
			Relative:   g.opts.FunctionTol,
			Iterations: g.opts.FunctionIters * len(start),
		}
	default:
		m = &optimize.BFGS{}
	}
	if g.opts.Disp {
		settings.Recorder = &logRecorder{log: g.log, method: method}
	}

	result, err := optimize.Minimize(problem, start, settings, m)
	if result == nil {
		out.Status = err.Error()
		g.log.Warn().Err(err).Str("method", method).Msg("optimization could not start")
		return out
	}

	out.Iterations = result.Stats.MajorIterations
	out.FuncEvaluations = result.Stats.FuncEvaluations
	out.Status = result.Status.String()
	if err != nil {
		g.log.Debug().Err(err).Str("method", method).Msg("optimization stopped")
	}

	if result.F <= fStart && len(result.X) == len(start) {
		out.X = append(out.X[:0], result.X...)
		out.F = result.F
		out.Converged = err == nil && successStatuses[result.Status]
	}
	return out
}

// logRecorder reports optimizer progress through zerolog.
type logRecorder struct {
	log    zerolog.Logger
	method string
}

func (r *logRecorder) Init() error {
	return nil
}

func (r *logRecorder) Record(loc *optimize.Location, op optimize.Operation, stats *optimize.Stats) error {
	if op != optimize.MajorIteration {
		return nil
	}
	r.log.Info().
		Str("method", r.method).
		Int("iteration", stats.MajorIterations).
		Int("evaluations", stats.FuncEvaluations).
		Float64("f", loc.F).
		Msg("optimizer iteration")
	return nil
}
