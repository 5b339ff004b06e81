package schedulers

import "github.com/Emmie8/schedsim/internal/process"

// Aging repeatedly runs, to completion, the unfinished process with the
// numerically lowest priority (lowest index on ties), then lowers the
// priority value of every unfinished process by interval, never below 0.
//
// Arrival time does not gate selection, so a process can be picked before it
// arrives and end up with a negative waiting time. The aged priorities are
// kept locally; the records keep their input priority.
//
// processes must pass Validate: a non-positive burst time panics.
func Aging(processes []process.Process, interval int) []TimeSlice {
	var (
		time, completed int
		priority        = make([]int, len(processes))
		gantt           []TimeSlice
	)
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
		priority[i] = processes[i].Priority
	}

	for completed < len(processes) {
		next := -1
		for i := range processes {
			if processes[i].RemainingTime > 0 && (next == -1 || priority[i] < priority[next]) {
				next = i
			}
		}

		p := &processes[next]
		p.WaitingTime = time - p.ArrivalTime
		gantt = appendSlice(gantt, p.ID, time, time+p.RemainingTime)
		time += p.RemainingTime
		p.RemainingTime = 0
		completed++

		age(processes, priority, interval)
	}

	return gantt
}

func age(processes []process.Process, priority []int, interval int) {
	for i := range processes {
		if processes[i].RemainingTime > 0 {
			priority[i] = max(0, priority[i]-interval)
		}
	}
}
