package emitter_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/progline/internal/emitter"
	"github.com/slok/progline/internal/model"
)

func TestJSONLineEmit(t *testing.T) {
	tests := map[string]struct {
		tasks   []model.Task
		expLine string
	}{
		"a nil snapshot is an empty array": {
			tasks:   nil,
			expLine: "[]\n",
		},
		"an empty snapshot is an empty array": {
			tasks:   []model.Task{},
			expLine: "[]\n",
		},
		"a single running task": {
			tasks: []model.Task{
				{Name: "Log in", Progress: model.RunningStatus()},
			},
			expLine: `[{"name":"Log in","status":"running"}]` + "\n",
		},
		"multiple tasks keep their order": {
			tasks: []model.Task{
				{Name: "Do work", Progress: model.InProgressStatus(2, 3)},
				model.NewTask("Cleanup"),
			},
			expLine: `[{"name":"Do work","status":"in_progress","done":2,"total":3},{"name":"Cleanup","status":"pending","total":null}]` + "\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			var buf bytes.Buffer
			err := emitter.NewJSONLine(&buf).Emit(test.tasks)

			require.NoError(t, err)
			assert.Equal(test.expLine, buf.String())
		})
	}
}

func TestJSONLineEmitFlushes(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	bw := bufio.NewWriterSize(&buf, 64*1024)

	err := emitter.NewJSONLine(bw).Emit([]model.Task{model.NewTask("Log in")})

	require.NoError(t, err)
	// Without the flush this would still sit in the bufio buffer.
	assert.Equal(`[{"name":"Log in","status":"pending","total":null}]`+"\n", buf.String())
}

func TestNoopEmitsNothing(t *testing.T) {
	assert := assert.New(t)

	err := emitter.Noop.Emit([]model.Task{model.NewTask("Log in")})

	assert.NoError(err)
}
