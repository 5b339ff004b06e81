package schedulers

import "github.com/Emmie8/schedsim/internal/process"

// ShortestRemainingTime simulates one time unit at a time, always running
// the arrived process with the least remaining time (lowest index on ties).
// processes must pass Validate: a non-positive burst time never completes and
// the loop does not terminate.
func ShortestRemainingTime(processes []process.Process) []TimeSlice {
	var (
		time, completed int
		gantt           []TimeSlice
	)
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
	}

	for completed < len(processes) {
		next := -1
		for i := range processes {
			if processes[i].ArrivalTime > time || processes[i].RemainingTime == 0 {
				continue
			}
			if next == -1 || processes[i].RemainingTime < processes[next].RemainingTime {
				next = i
			}
		}

		if next != -1 {
			p := &processes[next]
			p.RemainingTime--
			if p.RemainingTime == 0 {
				p.WaitingTime = time + 1 - p.BurstTime - p.ArrivalTime
				completed++
			}
			gantt = appendSlice(gantt, p.ID, time, time+1)
		}
		time++
	}

	return gantt
}
