package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emmie8/schedsim/internal/client"
	"github.com/Emmie8/schedsim/internal/process"
	"github.com/Emmie8/schedsim/internal/schedulers"
)

func testWorkload() ([]process.Process, schedulers.Options) {
	ps := []process.Process{process.New(1, 5, 3, 0), process.New(2, 3, 1, 0), process.New(3, 8, 2, 0)}
	return ps, schedulers.Options{Quantum: 2, Quanta: []int{1, 2}, AgingInterval: 1}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenProcessingFile(t *testing.T) {
	_, _, err := openProcessingFile()
	assert.ErrorIs(t, err, ErrInvalidArgs)

	_, _, err = openProcessingFile("a.csv", "b.csv")
	assert.ErrorIs(t, err, ErrInvalidArgs)

	_, _, err = openProcessingFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "workload.csv")
	require.NoError(t, os.WriteFile(path, []byte("5,3,0\n3,1,0\n"), 0o600))
	f, closeFile, err := openProcessingFile(path)
	require.NoError(t, err)
	defer closeFile()

	ps, err := process.Load(f)
	require.NoError(t, err)
	assert.Len(t, ps, 2)
}

func TestCompareLocal(t *testing.T) {
	ps, opts := testWorkload()

	c, err := compare(ps, opts, "", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "SPN", c.Best.Policy)
	assert.Len(t, c.Results, 8)

	_, err = compare(nil, opts, "", quietLogger())
	assert.ErrorIs(t, err, schedulers.ErrEmptyWorkload)
}

func TestCompareRemote(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		"POST",
		"http://sched.local:9095/api/v1/all",
		httpmock.NewStringResponder(
			200,
			`{"quantum":2,"quanta":[1,2],"aging_interval":1,"results":[],"best":{"policy":"SRT","average_waiting_time":2.5}}`,
		),
	)

	ps, opts := testWorkload()
	c, err := compare(ps, opts, "http://sched.local:9095", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, schedulers.Best{Policy: "SRT", AverageWaitingTime: 2.5}, c.Best)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())

	httpmock.Reset()
	httpmock.RegisterResponder(
		"POST",
		"http://sched.local:9095/api/v1/all",
		httpmock.NewStringResponder(400, `{"error":"empty workload"}`),
	)
	_, err = compare(nil, opts, "http://sched.local:9095", quietLogger())
	assert.ErrorIs(t, err, client.ErrRemote)
}

func TestScheduleLocal(t *testing.T) {
	ps, opts := testWorkload()

	r, err := schedule(ps, "rr", opts, "", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "RR", r.Policy)
	require.Len(t, r.Details, 3)
	assert.Equal(t, 6, r.Details[1].WaitingTime)

	_, err = schedule(ps, "lottery", opts, "", quietLogger())
	assert.ErrorIs(t, err, schedulers.ErrUnknownPolicy)
}

func TestScheduleRemote(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		"POST",
		"http://sched.local:9095/api/v1/fbv",
		httpmock.NewStringResponder(
			200,
			`{"policy":"FBV","title":"Feedback with Varying Time Quantum","average_waiting_time":6.33,"details":[{"process_id":1,"waiting_time":7}]}`,
		),
	)
	httpmock.RegisterResponder(
		"POST",
		"http://sched.local:9095/api/v1/lottery",
		httpmock.NewStringResponder(404, `{"error":"unknown policy: lottery"}`),
	)

	ps, opts := testWorkload()
	r, err := schedule(ps, "FBV", opts, "http://sched.local:9095", quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "FBV", r.Policy)
	require.Len(t, r.Details, 1)
	assert.Equal(t, 7, r.Details[0].WaitingTime)

	_, err = schedule(ps, "lottery", opts, "http://sched.local:9095", quietLogger())
	assert.ErrorIs(t, err, client.ErrRemote)
	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}

func TestPolicyNames(t *testing.T) {
	assert.Equal(t, "fcfs, rr, spn, srt, hrrn, fb, fbv, aging", policyNames())
}
