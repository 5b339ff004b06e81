package report

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emmie8/schedsim/internal/process"
	"github.com/Emmie8/schedsim/internal/responses"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

func comparison(t *testing.T) responses.ComparisonResponse {
	t.Helper()
	ps := []process.Process{
		process.New(1, 5, 3, 0),
		process.New(2, 3, 1, 0),
		process.New(3, 8, 2, 0),
	}
	sim := schedulers.NewSimulator(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, err := sim.Compare(ps, schedulers.Options{Quantum: 2, Quanta: []int{1, 2}, AgingInterval: 1})
	require.NoError(t, err)
	return responses.NewComparisonResponse(c)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, comparison(t))
	out := buf.String()

	for _, title := range []string{
		"First Come First Serve (FCFS)",
		"Round Robin (RR)",
		"Shortest Process Next (SPN)",
		"Shortest Remaining Time (SRT)",
		"Highest Response Ratio Next (HRRN)",
		"Feedback (FB)",
		"Feedback with Varying Time Quantum (FBV)",
		"Aging (Aging)",
	} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "quantum 2")
	assert.Contains(t, out, "2 quanta [1 2]")
	assert.Contains(t, out, "interval 1")
	assert.Contains(t, out, "Best algorithm: SPN with average waiting time: 3.67")
}

func TestOutputGantt(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, []schedulers.TimeSlice{{PID: 2, Start: 0, Stop: 3}, {PID: 1, Start: 3, Stop: 8}})
	assert.Equal(t, "Gantt schedule\n|   2   |   1   |\n0\t3\t8\n\n", buf.String())
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer
	c := comparison(t)
	WriteSchedule(&buf, c.Results[0])
	out := buf.String()
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "4.33")
	assert.Contains(t, out, "9.67")
}
