package schedulers

import (
	"errors"
	"fmt"

	"github.com/Emmie8/schedsim/internal/process"
)

var (
	ErrEmptyWorkload      = errors.New("empty workload")
	ErrInvalidBurstTime   = errors.New("invalid burst time")
	ErrInvalidArrivalTime = errors.New("invalid arrival time")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrUnknownPolicy      = errors.New("unknown policy")
)

const (
	// MaxSimulatedTime bounds the sum of all bursts plus the latest arrival.
	// SRT advances the clock one unit at a time up to this horizon.
	MaxSimulatedTime = 100_000
	// MaxProcesses bounds the workload size.
	MaxProcesses = 1_000
)

// Validate checks the workload and the policy parameters. Nothing is
// simulated when it returns an error.
func Validate(processes []process.Process, opts Options) error {
	if len(processes) == 0 {
		return ErrEmptyWorkload
	}
	if len(processes) > MaxProcesses {
		return fmt.Errorf("%w: %d processes, limit is %d", ErrInvalidParameter, len(processes), MaxProcesses)
	}

	var totalBurst, lastArrival int
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has burst time %d", ErrInvalidBurstTime, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 || p.ArrivalTime > MaxSimulatedTime {
			return fmt.Errorf("%w: process %d has arrival time %d, limit is %d", ErrInvalidArrivalTime, p.ID, p.ArrivalTime, MaxSimulatedTime)
		}
		// each term is checked before it is added, so the sums cannot overflow
		if p.BurstTime > MaxSimulatedTime-totalBurst {
			return fmt.Errorf("%w: total burst time exceeds %d at process %d", ErrInvalidBurstTime, MaxSimulatedTime, p.ID)
		}
		totalBurst += p.BurstTime
		lastArrival = max(lastArrival, p.ArrivalTime)
	}
	if totalBurst+lastArrival > MaxSimulatedTime {
		return fmt.Errorf("%w: workload spans %d time units, limit is %d", ErrInvalidBurstTime, totalBurst+lastArrival, MaxSimulatedTime)
	}

	return opts.Validate()
}

func (o Options) Validate() error {
	if o.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidParameter, o.Quantum)
	}
	if len(o.Quanta) == 0 {
		return fmt.Errorf("%w: quanta must not be empty", ErrInvalidParameter)
	}
	for i, q := range o.Quanta {
		if q <= 0 {
			return fmt.Errorf("%w: quanta[%d] must be positive, got %d", ErrInvalidParameter, i, q)
		}
	}
	if o.AgingInterval < 0 {
		return fmt.Errorf("%w: aging interval must not be negative, got %d", ErrInvalidParameter, o.AgingInterval)
	}

	return nil
}
