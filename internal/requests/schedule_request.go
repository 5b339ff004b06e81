package requests

import (
	"github.com/Emmie8/schedsim/internal/process"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

type Job struct {
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
	ArrivalTime int `json:"arrival_time"`
}

// ScheduleRequest carries a workload and optional parameter overrides.
// Nil fields fall back to the server defaults.
type ScheduleRequest struct {
	Jobs          []Job `json:"jobs"`
	Quantum       *int  `json:"quantum,omitempty"`
	Quanta        []int `json:"quanta,omitempty"`
	AgingInterval *int  `json:"aging_interval,omitempty"`
}

// Processes numbers the jobs from 1 in request order.
func (r ScheduleRequest) Processes() []process.Process {
	ps := make([]process.Process, len(r.Jobs))
	for i, j := range r.Jobs {
		ps[i] = process.New(i+1, j.BurstTime, j.Priority, j.ArrivalTime)
	}
	return ps
}

func (r ScheduleRequest) Options(defaults schedulers.Options) schedulers.Options {
	opts := defaults
	if r.Quantum != nil {
		opts.Quantum = *r.Quantum
	}
	if r.Quanta != nil {
		opts.Quanta = r.Quanta
	}
	if r.AgingInterval != nil {
		opts.AgingInterval = *r.AgingInterval
	}
	return opts
}

// NewScheduleRequest builds a request from a loaded workload.
func NewScheduleRequest(processes []process.Process, opts schedulers.Options) ScheduleRequest {
	jobs := make([]Job, len(processes))
	for i, p := range processes {
		jobs[i] = Job{BurstTime: p.BurstTime, Priority: p.Priority, ArrivalTime: p.ArrivalTime}
	}
	quantum, interval := opts.Quantum, opts.AgingInterval
	return ScheduleRequest{
		Jobs:          jobs,
		Quantum:       &quantum,
		Quanta:        opts.Quanta,
		AgingInterval: &interval,
	}
}
