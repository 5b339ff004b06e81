package responses

import "github.com/Emmie8/schedsim/internal/schedulers"

type ProcessResponse struct {
	ProcessID      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	ArrivalTime    int `json:"arrival_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
}

type ScheduleResponse struct {
	Policy                string                 `json:"policy"`
	Title                 string                 `json:"title"`
	AverageWaitingTime    float64                `json:"average_waiting_time"`
	AverageTurnaroundTime float64                `json:"average_turnaround_time"`
	Timeline              []schedulers.TimeSlice `json:"timeline"`
	Details               []ProcessResponse      `json:"details"`
}

type ComparisonResponse struct {
	Quantum       int                `json:"quantum"`
	Quanta        []int              `json:"quanta"`
	AgingInterval int                `json:"aging_interval"`
	Results       []ScheduleResponse `json:"results"`
	Best          schedulers.Best    `json:"best"`
}

type PolicyResponse struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewScheduleResponse(r schedulers.Result) ScheduleResponse {
	details := make([]ProcessResponse, len(r.Processes))
	for i, p := range r.Processes {
		details[i] = ProcessResponse{
			ProcessID:      p.ID,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			ArrivalTime:    p.ArrivalTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime(),
		}
	}
	return ScheduleResponse{
		Policy:                r.Policy,
		Title:                 r.Title,
		AverageWaitingTime:    r.AverageWaitingTime,
		AverageTurnaroundTime: r.AverageTurnaroundTime,
		Timeline:              r.Timeline,
		Details:               details,
	}
}

func NewComparisonResponse(c schedulers.Comparison) ComparisonResponse {
	results := make([]ScheduleResponse, len(c.Results))
	for i := range c.Results {
		results[i] = NewScheduleResponse(c.Results[i])
	}
	return ComparisonResponse{
		Quantum:       c.Options.Quantum,
		Quanta:        c.Options.Quanta,
		AgingInterval: c.Options.AgingInterval,
		Results:       results,
		Best:          c.Best,
	}
}

func NewPolicyResponses(policies []schedulers.Policy) []PolicyResponse {
	out := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		out[i] = PolicyResponse{Name: p.Name, Title: p.Title}
	}
	return out
}
