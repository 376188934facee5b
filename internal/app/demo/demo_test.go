package demo_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/progline/internal/app/demo"
	"github.com/slok/progline/internal/emitter"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/progress"
	"github.com/slok/progline/internal/scenario"
)

func newBufferService(t *testing.T) (*demo.Service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	manager, err := progress.NewManager(progress.ManagerConfig{
		Emitter: emitter.NewJSONLine(&buf),
	})
	require.NoError(t, err)

	svc, err := demo.NewService(demo.ServiceConfig{Manager: manager})
	require.NoError(t, err)

	return svc, &buf
}

func TestNewService(t *testing.T) {
	_, err := demo.NewService(demo.ServiceConfig{})
	assert.Error(t, err)
}

func TestServiceRunProducesTheFullStream(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	svc, buf := newBufferService(t)

	err := svc.Run(context.Background(), demo.Request{Scenario: scenario.Scenario{
		Tasks: []scenario.TaskSpec{
			{Name: "Log in"},
			{Name: "Do work", Total: 2},
			{Name: "Cleanup", Fail: "boom"},
		},
	}})
	require.NoError(err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 8)

	expLines := []string{
		// The whole queue is visible from the first snapshot.
		`[{"name":"Log in","status":"running"},{"name":"Do work","status":"pending","total":2},{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Do work","status":"pending","total":2},{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Do work","status":"in_progress","done":0,"total":2},{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Do work","status":"in_progress","done":1,"total":2},{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Do work","status":"in_progress","done":2,"total":2},{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Cleanup","status":"pending","total":null}]`,
		`[{"name":"Cleanup","status":"running"}]`,
		// The failing task also leaves the stream empty at the end.
		`[]`,
	}
	for i, exp := range expLines {
		assert.JSONEq(exp, lines[i])
	}
}

func TestServiceRunCustomStep(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	svc, buf := newBufferService(t)

	err := svc.Run(context.Background(), demo.Request{Scenario: scenario.Scenario{
		Tasks: []scenario.TaskSpec{
			{Name: "Do work", Total: 4, Step: 2},
		},
	}})
	require.NoError(err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 4)
	assert.JSONEq(`[{"name":"Do work","status":"in_progress","done":0,"total":4}]`, lines[0])
	assert.JSONEq(`[{"name":"Do work","status":"in_progress","done":2,"total":4}]`, lines[1])
	assert.JSONEq(`[{"name":"Do work","status":"in_progress","done":4,"total":4}]`, lines[2])
	assert.JSONEq(`[]`, lines[3])
}

func TestServiceRunInvalidScenario(t *testing.T) {
	assert := assert.New(t)

	svc, _ := newBufferService(t)

	err := svc.Run(context.Background(), demo.Request{Scenario: scenario.Scenario{}})
	assert.ErrorIs(err, model.ErrNotValid)
}

func TestServiceRunHonorsContextCancellation(t *testing.T) {
	assert := assert.New(t)

	svc, _ := newBufferService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Run(ctx, demo.Request{Scenario: scenario.Scenario{
		Tasks: []scenario.TaskSpec{
			{Name: "Log in", Delay: scenario.Duration(time.Hour)},
		},
	}})
	assert.ErrorIs(err, context.Canceled)
}
