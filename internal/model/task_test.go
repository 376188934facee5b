package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/progline/internal/model"
)

func TestTaskBuilders(t *testing.T) {
	assert := assert.New(t)

	task := model.NewTask("Log in")
	assert.Equal("Log in", task.Name)
	assert.Equal(model.StatusKindPending, task.Progress.Kind)
	assert.Nil(task.Progress.Total)

	iterative := task.WithTotal(3)
	require.NotNil(t, iterative.Progress.Total)
	assert.Equal(uint64(3), *iterative.Progress.Total)
	// The original task is untouched.
	assert.Nil(task.Progress.Total)

	renamed := task.WithName("Sign in")
	assert.Equal("Sign in", renamed.Name)
	assert.Equal("Log in", task.Name)
}

func TestStatusIsTerminal(t *testing.T) {
	tests := map[string]struct {
		status model.Status
		exp    bool
	}{
		"pending is not terminal":     {status: model.PendingStatus(), exp: false},
		"running is not terminal":     {status: model.RunningStatus(), exp: false},
		"in progress is not terminal": {status: model.InProgressStatus(1, 4), exp: false},
		"finished is terminal":        {status: model.FinishedStatus(), exp: true},
		"error is terminal":           {status: model.ErrorStatus("boom"), exp: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.status.IsTerminal())
		})
	}
}

func TestTaskMarshalJSON(t *testing.T) {
	tests := map[string]struct {
		task    model.Task
		expJSON string
		expErr  bool
	}{
		"pending spinner carries a null total": {
			task:    model.NewTask("Log in"),
			expJSON: `{"name":"Log in","status":"pending","total":null}`,
		},
		"pending iterative carries its total": {
			task:    model.NewTask("Do work").WithTotal(3),
			expJSON: `{"name":"Do work","status":"pending","total":3}`,
		},
		"running has no extra fields": {
			task:    model.Task{Name: "Log in", Progress: model.RunningStatus()},
			expJSON: `{"name":"Log in","status":"running"}`,
		},
		"in progress carries done and total": {
			task:    model.Task{Name: "Do work", Progress: model.InProgressStatus(2, 3)},
			expJSON: `{"name":"Do work","status":"in_progress","done":2,"total":3}`,
		},
		"finished has no extra fields": {
			task:    model.Task{Name: "Do work", Progress: model.FinishedStatus()},
			expJSON: `{"name":"Do work","status":"finished"}`,
		},
		"error carries the message": {
			task:    model.Task{Name: "Do work", Progress: model.ErrorStatus("timed out")},
			expJSON: `{"name":"Do work","status":"error","message":"timed out"}`,
		},
		"in progress without a total is invalid": {
			task:   model.Task{Name: "broken", Progress: model.Status{Kind: model.StatusKindInProgress, Done: 1}},
			expErr: true,
		},
		"unknown status kind is invalid": {
			task:   model.Task{Name: "broken", Progress: model.Status{Kind: "warp"}},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			data, err := json.Marshal(test.task)

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(test.expJSON, string(data))
		})
	}
}

func TestTaskUnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		data    string
		expTask model.Task
		expErr  bool
	}{
		"pending spinner": {
			data:    `{"name":"Log in","status":"pending","total":null}`,
			expTask: model.NewTask("Log in"),
		},
		"pending iterative": {
			data:    `{"name":"Do work","status":"pending","total":3}`,
			expTask: model.NewTask("Do work").WithTotal(3),
		},
		"running": {
			data:    `{"name":"Log in","status":"running"}`,
			expTask: model.Task{Name: "Log in", Progress: model.RunningStatus()},
		},
		"in progress": {
			data:    `{"name":"Do work","status":"in_progress","done":2,"total":3}`,
			expTask: model.Task{Name: "Do work", Progress: model.InProgressStatus(2, 3)},
		},
		"finished": {
			data:    `{"name":"Do work","status":"finished"}`,
			expTask: model.Task{Name: "Do work", Progress: model.FinishedStatus()},
		},
		"error": {
			data:    `{"name":"Do work","status":"error","message":"timed out"}`,
			expTask: model.Task{Name: "Do work", Progress: model.ErrorStatus("timed out")},
		},
		"missing name fails": {
			data:   `{"status":"running"}`,
			expErr: true,
		},
		"unknown status fails": {
			data:   `{"name":"x","status":"warp"}`,
			expErr: true,
		},
		"in progress without total fails": {
			data:   `{"name":"x","status":"in_progress","done":2}`,
			expErr: true,
		},
		"not JSON fails": {
			data:   `not json`,
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var task model.Task
			err := json.Unmarshal([]byte(test.data), &task)

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(t, err)
			assert.Equal(test.expTask, task)
		})
	}
}
