package banditpam

import (
	"io"
	"log/slog"

	"github.com/banditpam/banditpam/ucb"
)

// Logger wraps a structured slog.Logger with the handful of typed log
// calls a fit emits, matching vecgo's Logger wrapper: callers never
// build slog.Attr values themselves, they call a named LogXxx method.
type Logger struct {
	logger    *slog.Logger
	verbosity int
}

func newLogger(w io.Writer, verbosity int) *Logger {
	level := slog.LevelWarn
	if verbosity > 0 {
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), verbosity: verbosity}
}

func (l *Logger) enabled() bool { return l.verbosity > 0 }

func sigmaAttrs(s ucb.Summary) []any {
	return []any{
		"sigma_min", s.Min,
		"sigma_q25", s.Q25,
		"sigma_median", s.Median,
		"sigma_q75", s.Q75,
		"sigma_max", s.Max,
		"sigma_mean", s.Mean,
	}
}

// LogBuildStep records one BUILD insertion: which point was inserted,
// the total loss after insertion, and the dispersion summary from the
// round that chose it.
func (l *Logger) LogBuildStep(step, inserted int, totalLoss float64, sigmas ucb.Summary) {
	if !l.enabled() {
		return
	}
	args := append([]any{"phase", "build", "step", step, "inserted", inserted, "loss", totalLoss}, sigmaAttrs(sigmas)...)
	l.logger.Info("build step", args...)
}

// LogSwapStep records one SWAP iteration: which medoid position was
// replaced, by which candidate, the resulting total loss, and the
// round's dispersion summary.
func (l *Logger) LogSwapStep(step, position, candidate int, totalLoss float64, sigmas ucb.Summary) {
	if !l.enabled() {
		return
	}
	args := append([]any{
		"phase", "swap", "step", step, "position", position, "candidate", candidate, "loss", totalLoss,
	}, sigmaAttrs(sigmas)...)
	l.logger.Info("swap step", args...)
}

// LogDispersion records a standalone sigma summary, independent of any
// particular build/swap step.
func (l *Logger) LogDispersion(phase string, sigmas ucb.Summary) {
	if !l.enabled() {
		return
	}
	args := append([]any{"phase", phase}, sigmaAttrs(sigmas)...)
	l.logger.Info("dispersion", args...)
}

// LogFitComplete records a fit's terminal state.
func (l *Logger) LogFitComplete(mBuild, mFinal []int, steps int, maxIterReached bool) {
	if !l.enabled() {
		return
	}
	l.logger.Info("fit complete",
		"m_build", mBuild,
		"m_final", mFinal,
		"steps", steps,
		"max_iter_reached", maxIterReached,
	)
}
