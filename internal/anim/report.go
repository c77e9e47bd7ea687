package anim

import "time"

type Outcome int

const (
	Running Outcome = iota
	StoppedByDuration
	StoppedByCancel
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case StoppedByDuration:
		return "duration elapsed"
	case StoppedByCancel:
		return "cancelled"
	default:
		return "unknown"
	}
}

// maxCostSamples bounds FrameCosts for runs with no duration.
const maxCostSamples = 1024

// Report summarises a finished run.
type Report struct {
	Style   string
	Outcome Outcome
	Frames  int
	Elapsed time.Duration
	// FrameCosts holds render+flush time of the most recent frames.
	FrameCosts []time.Duration
}

func (r *Report) addCost(d time.Duration) {
	if len(r.FrameCosts) == maxCostSamples {
		copy(r.FrameCosts, r.FrameCosts[1:])
		r.FrameCosts = r.FrameCosts[:maxCostSamples-1]
	}
	r.FrameCosts = append(r.FrameCosts, d)
}

func (r Report) MeanCost() time.Duration {
	if len(r.FrameCosts) == 0 {
		return 0
	}
	var sum time.Duration
	for _, c := range r.FrameCosts {
		sum += c
	}
	return sum / time.Duration(len(r.FrameCosts))
}

func (r Report) MaxCost() time.Duration {
	var m time.Duration
	for _, c := range r.FrameCosts {
		m = max(m, c)
	}
	return m
}

// CostMillis returns FrameCosts in milliseconds, for plotting.
func (r Report) CostMillis() []float64 {
	out := make([]float64, len(r.FrameCosts))
	for i, c := range r.FrameCosts {
		out[i] = float64(c) / float64(time.Millisecond)
	}
	return out
}
