package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Emmie8/schedsim/internal/responses"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

// Write outputs every policy's Gantt chart and schedule table followed by
// the averages summary and the best policy.
func Write(w io.Writer, c responses.ComparisonResponse) {
	for _, r := range c.Results {
		WriteSchedule(w, r)
	}
	WriteSummary(w, c)
}

// WriteSchedule outputs one policy's title, Gantt chart and table.
func WriteSchedule(w io.Writer, r responses.ScheduleResponse) {
	outputTitle(w, fmt.Sprintf("%s (%s)", r.Title, r.Policy))
	outputGantt(w, r.Timeline)
	outputSchedule(w, r)
}

func WriteSummary(w io.Writer, c responses.ComparisonResponse) {
	outputTitle(w, "Average waiting times")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Parameters", "Average wait"})
	for _, r := range c.Results {
		table.Append([]string{
			fmt.Sprintf("%s (%s)", r.Title, r.Policy),
			parameters(r.Policy, c),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
		})
	}
	table.SetFooter([]string{"Best", c.Best.Policy, fmt.Sprintf("%.2f", c.Best.AverageWaitingTime)})
	table.Render()

	_, _ = fmt.Fprintf(w, "\nBest algorithm: %s with average waiting time: %.2f\n", c.Best.Policy, c.Best.AverageWaitingTime)
}

func parameters(policy string, c responses.ComparisonResponse) string {
	switch policy {
	case "RR", "FB":
		return fmt.Sprintf("quantum %d", c.Quantum)
	case "FBV":
		return fmt.Sprintf("%d quanta %v", len(c.Quanta), c.Quanta)
	case "Aging":
		return fmt.Sprintf("interval %d", c.AgingInterval)
	default:
		return ""
	}
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []schedulers.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", max(0, 8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, r responses.ScheduleResponse) {
	rows := make([][]string, len(r.Details))
	for i, d := range r.Details {
		rows[i] = []string{
			fmt.Sprint(d.ProcessID),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnaroundTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", r.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnaroundTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
