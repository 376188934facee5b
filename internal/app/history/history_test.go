package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/progline/internal/app/history"
	"github.com/slok/progline/internal/model"
	"github.com/slok/progline/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	_, err := history.NewService(history.ServiceConfig{})
	assert.Error(t, err)
}

func TestServiceRun(t *testing.T) {
	t0 := time.Date(2025, 11, 5, 10, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		request history.Request
		mock    func(m *storagemock.Repository)
		expResp *history.Response
		expErr  bool
	}{
		"an empty run ID lists the recorded runs": {
			request: history.Request{},
			mock: func(m *storagemock.Repository) {
				m.On("ListRuns", mock.Anything).Once().Return([]model.Run{
					{ID: "r1", StartedAt: t0},
					{ID: "r2", StartedAt: t0.Add(time.Hour)},
				}, nil)
			},
			expResp: &history.Response{Runs: []model.Run{
				{ID: "r1", StartedAt: t0},
				{ID: "r2", StartedAt: t0.Add(time.Hour)},
			}},
		},
		"a run ID lists its snapshots": {
			request: history.Request{RunID: "r1"},
			mock: func(m *storagemock.Repository) {
				m.On("ListSnapshots", mock.Anything, "r1").Once().Return([]model.SnapshotRecord{
					{RunID: "r1", Seq: 0, RecordedAt: t0, Tasks: []model.Task{
						{Name: "Log in", Progress: model.RunningStatus()},
					}},
				}, nil)
			},
			expResp: &history.Response{Records: []model.SnapshotRecord{
				{RunID: "r1", Seq: 0, RecordedAt: t0, Tasks: []model.Task{
					{Name: "Log in", Progress: model.RunningStatus()},
				}},
			}},
		},
		"journal errors are propagated": {
			request: history.Request{RunID: "missing"},
			mock: func(m *storagemock.Repository) {
				m.On("ListSnapshots", mock.Anything, "missing").Once().Return(nil, model.ErrNotFound)
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			journal := &storagemock.Repository{}
			test.mock(journal)

			svc, err := history.NewService(history.ServiceConfig{Journal: journal})
			require.NoError(t, err)

			resp, err := svc.Run(context.Background(), test.request)

			if test.expErr {
				assert.Error(err)
			} else {
				require.NoError(t, err)
				assert.Equal(test.expResp, resp)
			}
			journal.AssertExpectations(t)
		})
	}
}
