package schedulers

import (
	"fmt"
	"strings"

	"github.com/Emmie8/schedsim/internal/process"
)

// Options holds the per-policy parameters. RR and FB share Quantum.
type Options struct {
	Quantum       int   `json:"quantum"`
	Quanta        []int `json:"quanta"`
	AgingInterval int   `json:"aging_interval"`
}

// TimeSlice is one contiguous run of a process on the virtual CPU.
type TimeSlice struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Policy names a scheduling algorithm and how to run it.
type Policy struct {
	Name  string
	Title string
	run   func(processes []process.Process, opts Options) []TimeSlice
}

var policies = []Policy{
	{
		Name:  "FCFS",
		Title: "First Come First Serve",
		run: func(ps []process.Process, _ Options) []TimeSlice {
			return FirstComeFirstServe(ps)
		},
	},
	{
		Name:  "RR",
		Title: "Round Robin",
		run: func(ps []process.Process, o Options) []TimeSlice {
			return RoundRobin(ps, o.Quantum)
		},
	},
	{
		Name:  "SPN",
		Title: "Shortest Process Next",
		run: func(ps []process.Process, _ Options) []TimeSlice {
			return ShortestProcessNext(ps)
		},
	},
	{
		Name:  "SRT",
		Title: "Shortest Remaining Time",
		run: func(ps []process.Process, _ Options) []TimeSlice {
			return ShortestRemainingTime(ps)
		},
	},
	{
		Name:  "HRRN",
		Title: "Highest Response Ratio Next",
		run: func(ps []process.Process, _ Options) []TimeSlice {
			return HighestResponseRatioNext(ps)
		},
	},
	{
		Name:  "FB",
		Title: "Feedback",
		run: func(ps []process.Process, o Options) []TimeSlice {
			return Feedback(ps, o.Quantum)
		},
	},
	{
		Name:  "FBV",
		Title: "Feedback with Varying Time Quantum",
		run: func(ps []process.Process, o Options) []TimeSlice {
			return FeedbackVarying(ps, o.Quanta)
		},
	},
	{
		Name:  "Aging",
		Title: "Aging",
		run: func(ps []process.Process, o Options) []TimeSlice {
			return Aging(ps, o.AgingInterval)
		},
	},
}

// Policies returns the policies in canonical order.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// Lookup finds a policy by name, ignoring case.
func Lookup(name string) (Policy, error) {
	for _, p := range policies {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// appendSlice extends the last slice when the same process keeps the CPU.
func appendSlice(gantt []TimeSlice, pid, start, stop int) []TimeSlice {
	if n := len(gantt); n > 0 && gantt[n-1].PID == pid && gantt[n-1].Stop == start {
		gantt[n-1].Stop = stop
		return gantt
	}
	return append(gantt, TimeSlice{PID: pid, Start: start, Stop: stop})
}
