package schedulers

import (
	"log/slog"

	"github.com/Emmie8/schedsim/internal/process"
)

// Result is one policy's run over its own copy of the workload.
type Result struct {
	Policy                string            `json:"policy"`
	Title                 string            `json:"title"`
	Processes             []process.Process `json:"processes"`
	Timeline              []TimeSlice       `json:"timeline"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnaroundTime float64           `json:"average_turnaround_time"`
}

// Best is the policy with the smallest average waiting time.
type Best struct {
	Policy             string  `json:"policy"`
	AverageWaitingTime float64 `json:"average_waiting_time"`
}

type Comparison struct {
	Options Options  `json:"options"`
	Results []Result `json:"results"`
	Best    Best     `json:"best"`
}

type Simulator struct {
	Log *slog.Logger
}

func NewSimulator(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{Log: logger}
}

// Run validates the input and runs a single policy on a copy of processes.
func (s *Simulator) Run(name string, processes []process.Process, opts Options) (Result, error) {
	policy, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	if err := Validate(processes, opts); err != nil {
		return Result{}, err
	}

	return s.run(policy, processes, opts), nil
}

// Compare validates the input, runs every policy in canonical order on its
// own copy of processes and selects the best one.
func (s *Simulator) Compare(processes []process.Process, opts Options) (Comparison, error) {
	if err := Validate(processes, opts); err != nil {
		s.Log.Warn("rejected workload", slog.Any("error", err))
		return Comparison{}, err
	}

	results := make([]Result, 0, len(policies))
	for _, policy := range policies {
		results = append(results, s.run(policy, processes, opts))
	}

	best := SelectBest(results)
	s.Log.Info("best policy selected",
		slog.String("policy", best.Policy),
		slog.Float64("average_waiting_time", best.AverageWaitingTime),
		slog.Int("processes", len(processes)),
	)

	return Comparison{
		Options: opts,
		Results: results,
		Best:    best,
	}, nil
}

func (s *Simulator) run(policy Policy, processes []process.Process, opts Options) Result {
	ps := process.Clone(processes)
	timeline := policy.run(ps, opts)
	wait, turnaround := Averages(ps)

	s.Log.Debug("policy finished",
		slog.String("policy", policy.Name),
		slog.Float64("average_waiting_time", wait),
		slog.Int("slices", len(timeline)),
	)

	return Result{
		Policy:                policy.Name,
		Title:                 policy.Title,
		Processes:             ps,
		Timeline:              timeline,
		AverageWaitingTime:    wait,
		AverageTurnaroundTime: turnaround,
	}
}

// Averages returns the mean waiting and turnaround times. processes must not be empty.
func Averages(processes []process.Process) (waiting, turnaround float64) {
	var waitSum, turnaroundSum int
	for _, p := range processes {
		waitSum += p.WaitingTime
		turnaroundSum += p.TurnaroundTime()
	}

	count := float64(len(processes))
	return float64(waitSum) / count, float64(turnaroundSum) / count
}

// SelectBest returns the result with the strictly smallest average waiting
// time. The earliest result wins ties. An empty slice yields the zero Best.
func SelectBest(results []Result) Best {
	if len(results) == 0 {
		return Best{}
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.AverageWaitingTime < best.AverageWaitingTime {
			best = r
		}
	}
	return Best{Policy: best.Policy, AverageWaitingTime: best.AverageWaitingTime}
}
