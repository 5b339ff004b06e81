package schedulers

import (
	"github.com/Emmie8/schedsim/internal/deque"
	"github.com/Emmie8/schedsim/internal/process"
)

// RoundRobin gives each process at most quantum units per turn. Every
// process is queued at time 0 in slice order; arrival time is not used.
// processes must pass Validate and quantum must be positive.
func RoundRobin(processes []process.Process, quantum int) []TimeSlice {
	return cycle(processes, func(int) int { return quantum })
}

// Feedback is round robin where a process's quantum doubles each time it is
// preempted: quantum * 2^level. The same preconditions as RoundRobin apply.
func Feedback(processes []process.Process, quantum int) []TimeSlice {
	return cycle(processes, func(level int) int { return quantum << level })
}

// FeedbackVarying is round robin where the quantum for a process at a given
// level is quanta[level % len(quanta)]. processes must pass Validate and
// quanta must be non-empty with positive entries.
func FeedbackVarying(processes []process.Process, quanta []int) []TimeSlice {
	return cycle(processes, func(level int) int { return quanta[level%len(quanta)] })
}

// cycle runs a FIFO ready queue of indices seeded in slice order. A process
// whose remaining time exceeds its quantum is charged the quantum, moves one
// level down and goes to the back of the queue; otherwise it completes.
func cycle(processes []process.Process, quantumFor func(level int) int) []TimeSlice {
	var (
		time  int
		level = make([]int, len(processes))
		ready = deque.New[int]()
		gantt []TimeSlice
	)
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
		ready.PushBack(i)
	}

	for ready.Len() > 0 {
		i, _ := ready.PopFront()
		p := &processes[i]
		q := quantumFor(level[i])

		start := time
		if p.RemainingTime > q {
			time += q
			p.RemainingTime -= q
			level[i]++
			ready.PushBack(i)
		} else {
			time += p.RemainingTime
			p.WaitingTime = time - p.BurstTime
			p.RemainingTime = 0
		}
		gantt = appendSlice(gantt, p.ID, start, time)
	}

	return gantt
}
