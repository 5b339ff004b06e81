package process

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidRow = errors.New("invalid process row")

// Process is one synthetic workload descriptor.
// BurstTime, Priority and ArrivalTime are inputs; WaitingTime and
// RemainingTime belong to the policy run that owns the record.
type Process struct {
	ID            int `json:"id"`
	BurstTime     int `json:"burst_time"`
	Priority      int `json:"priority"`
	ArrivalTime   int `json:"arrival_time"`
	WaitingTime   int `json:"waiting_time"`
	RemainingTime int `json:"-"`
}

func New(id, burst, priority, arrival int) Process {
	return Process{
		ID:            id,
		BurstTime:     burst,
		Priority:      priority,
		ArrivalTime:   arrival,
		RemainingTime: burst,
	}
}

// TurnaroundTime is the waiting time plus the burst time.
func (p Process) TurnaroundTime() int {
	return p.WaitingTime + p.BurstTime
}

// Clone returns an independent copy of processes.
func Clone(processes []Process) []Process {
	if processes == nil {
		return nil
	}
	out := make([]Process, len(processes))
	copy(out, processes)
	return out
}

// Load reads a CSV workload of "burst,priority,arrival" rows.
// IDs are assigned by position starting at 1. Lines starting with '#' are skipped.
func Load(r io.Reader) ([]Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3", ErrInvalidRow, i+1, len(row))
		}
		var fields [3]int
		for j := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRow, i+1, err)
			}
			fields[j] = v
		}
		processes = append(processes, New(len(processes)+1, fields[0], fields[1], fields[2]))
	}

	return processes, nil
}
