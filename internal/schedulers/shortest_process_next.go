package schedulers

import "github.com/Emmie8/schedsim/internal/process"

// ShortestProcessNext runs, to completion, the arrived process with the
// smallest burst time. Ties go to the lowest index. When nothing has arrived
// the clock advances one unit. processes must pass Validate.
func ShortestProcessNext(processes []process.Process) []TimeSlice {
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
			if processes[i].RemainingTime == 0 || processes[i].ArrivalTime > time {
				continue
			}
			if next == -1 || processes[i].BurstTime < processes[next].BurstTime {
				next = i
			}
		}

		if next == -1 {
			time++
			continue
		}

		p := &processes[next]
		p.WaitingTime = time - p.ArrivalTime
		gantt = appendSlice(gantt, p.ID, time, time+p.BurstTime)
		time += p.BurstTime
		p.RemainingTime = 0
		completed++
	}

	return gantt
}
