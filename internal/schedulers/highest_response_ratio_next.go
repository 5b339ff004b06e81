package schedulers

import "github.com/Emmie8/schedsim/internal/process"

// ResponseRatio is (waited + burst) / burst for a process considered at time.
func ResponseRatio(p process.Process, time int) float64 {
	return float64(time-p.ArrivalTime+p.BurstTime) / float64(p.BurstTime)
}

// HighestResponseRatioNext runs, to completion, the arrived process with the
// largest response ratio. The first maximum found wins ties. processes must
// pass Validate; a zero burst time divides by zero.
func HighestResponseRatioNext(processes []process.Process) []TimeSlice {
	var (
		time, completed int
		gantt           []TimeSlice
	)
	for i := range processes {
		processes[i].RemainingTime = processes[i].BurstTime
	}

	for completed < len(processes) {
		next, best := -1, -1.0
		for i := range processes {
			if processes[i].RemainingTime == 0 || processes[i].ArrivalTime > time {
				continue
			}
			if ratio := ResponseRatio(processes[i], time); ratio > best {
				next, best = i, ratio
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
