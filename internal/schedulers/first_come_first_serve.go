package schedulers

import "github.com/Emmie8/schedsim/internal/process"

// FirstComeFirstServe runs processes in slice order, which must already be
// sorted by arrival time. Waiting time is clamped at zero; idle gaps are not
// otherwise modelled. processes must pass Validate.
func FirstComeFirstServe(processes []process.Process) []TimeSlice {
	gantt := make([]TimeSlice, 0, len(processes))
	for i := range processes {
		if i == 0 {
			processes[i].WaitingTime = 0
		} else {
			wait := processes[i-1].WaitingTime + processes[i-1].BurstTime - processes[i].ArrivalTime
			processes[i].WaitingTime = max(0, wait)
		}
		processes[i].RemainingTime = 0

		start := processes[i].ArrivalTime + processes[i].WaitingTime
		gantt = append(gantt, TimeSlice{
			PID:   processes[i].ID,
			Start: start,
			Stop:  start + processes[i].BurstTime,
		})
	}

	return gantt
}
