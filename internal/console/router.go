package console

import (
	"context"
	"errors"
	"fmt"
	"subway-simulation/internal/domain"
	"subway-simulation/internal/platform/obs"

	"github.com/sirupsen/logrus"
)

// Simulation is the subset of the transit clock the command surface drives.
type Simulation interface {
	Configure(field domain.Field, value float64) (string, error)
	BeginRunning() int
	Run(cmd domain.Command, value float64) (string, error)
	Configuring() bool
}

// Outcome is what handling one line produced.
type Outcome struct {
	Lines []string
	Stop  bool
}

type Handler interface {
	Handle(ctx context.Context, in Input) Outcome
}

type HandlerFunc func(ctx context.Context, in Input) Outcome

func (f HandlerFunc) Handle(ctx context.Context, in Input) Outcome { return f(ctx, in) }

type route struct {
	needsValue bool
	handle     func(in Input) (string, error)
	stop       bool
}

// Router dispatches a parsed line to the handler whitelisted for the
// simulation's current phase.
type Router struct {
	sim       Simulation
	logger    logrus.FieldLogger
	configure map[string]route
	running   map[string]route
}

// NewRouter wires the per-phase command tables and wraps them in logging.
func NewRouter(sim Simulation, logger logrus.FieldLogger) Handler {
	r := &Router{sim: sim, logger: logger}

	stop := route{stop: true}
	setField := func(field domain.Field) route {
		return route{
			needsValue: true,
			handle:     func(in Input) (string, error) { return sim.Configure(field, in.Value) },
		}
	}
	runCommand := func(cmd domain.Command) route {
		return route{
			needsValue: true,
			handle:     func(in Input) (string, error) { return sim.Run(cmd, in.Value) },
		}
	}

	r.configure = map[string]route{
		"start": {handle: func(Input) (string, error) {
			return fmt.Sprintf("At %d", sim.BeginRunning()), nil
		}},
		"stop":              stop,
		"set rate":          setField(domain.FieldRate),
		"set stations":      setField(domain.FieldStations),
		"set start_station": setField(domain.FieldStartStation),
		"set subway_speed":  setField(domain.FieldSubwaySpeed),
	}
	r.running = map[string]route{
		"stop":     stop,
		"goto":     runCommand(domain.CommandGoto),
		"set rate": runCommand(domain.CommandRate),
	}

	return loggingMiddleware(r, logger)
}

func (r *Router) Handle(ctx context.Context, in Input) Outcome {
	phase := "running"
	table := r.running
	if r.sim.Configuring() {
		phase = "configuring"
		table = r.configure
	}

	rt, ok := table[in.Verb]
	if !ok || rt.needsValue != in.HasValue {
		return Outcome{Lines: []string{domain.ErrInvalidCommand.Error()}}
	}
	if rt.stop {
		return Outcome{Stop: true}
	}

	line, err := r.call(ctx, phase, in, rt)
	if err != nil {
		return Outcome{Lines: []string{errorLine(err)}}
	}
	if line == "" {
		return Outcome{}
	}
	return Outcome{Lines: []string{line}}
}

func (r *Router) call(ctx context.Context, phase string, in Input, rt route) (_ string, err error) {
	defer obs.Time(ctx, r.logger, phase+"."+in.Verb)(&err)
	return rt.handle(in)
}

func errorLine(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Error()
	}
	return "ERROR " + err.Error()
}
