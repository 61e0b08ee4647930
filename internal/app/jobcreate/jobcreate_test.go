package jobcreate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/app/jobcreate"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	svc, err := jobcreate.NewService(jobcreate.ServiceConfig{Repository: &storagemock.MockJobRepository{}})
	require.NoError(t, err)
	require.NotNil(t, svc)

	svc, err = jobcreate.NewService(jobcreate.ServiceConfig{})
	require.Error(t, err)
	require.Nil(t, svc)
}

func TestServiceRun(t *testing.T) {
	tests := map[string]struct {
		config      model.JobConfig
		mock        func(m *storagemock.MockJobRepository)
		expErr      bool
		expValidErr bool
		check       func(t *testing.T, job *model.PrintJob)
	}{
		"valid config creates a job at the initial stage": {
			config: model.JobConfig{
				Client:   "Oxford Press",
				Title:    "Advanced Calculus",
				Type:     model.JobTypeAcademic,
				Quantity: 2000,
				Priority: model.PriorityNormal,
			},
			mock: func(m *storagemock.MockJobRepository) {
				m.On("InsertJob", mock.Anything, mock.Anything).Once().Return(nil)
			},
			check: func(t *testing.T, job *model.PrintJob) {
				assert.True(t, strings.HasPrefix(job.ID, "JOB-"))
				assert.Equal(t, 0, job.Stage)
				assert.Equal(t, 0, job.SubStep)
				assert.Equal(t, 2000, job.Quantity)
				assert.False(t, job.CreatedAt.IsZero())
			},
		},
		"defaults are applied for optional fields": {
			config: model.JobConfig{Client: "Oxford Press", Title: "Advanced Calculus", Quantity: -3},
			mock: func(m *storagemock.MockJobRepository) {
				m.On("InsertJob", mock.Anything, mock.Anything).Once().Return(nil)
			},
			check: func(t *testing.T, job *model.PrintJob) {
				assert.Equal(t, model.JobTypeOther, job.Type)
				assert.Equal(t, model.PriorityNormal, job.Priority)
				assert.Equal(t, 1, job.Quantity)
			},
		},
		"missing client fails validation": {
			config:      model.JobConfig{Title: "Advanced Calculus"},
			mock:        func(m *storagemock.MockJobRepository) {},
			expErr:      true,
			expValidErr: true,
		},
		"missing title fails validation": {
			config:      model.JobConfig{Client: "Oxford Press"},
			mock:        func(m *storagemock.MockJobRepository) {},
			expErr:      true,
			expValidErr: true,
		},
		"repository error propagates": {
			config: model.JobConfig{Client: "Oxford Press", Title: "Advanced Calculus"},
			mock: func(m *storagemock.MockJobRepository) {
				m.On("InsertJob", mock.Anything, mock.Anything).Once().Return(errors.New("boom"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := &storagemock.MockJobRepository{}
			test.mock(m)

			svc, err := jobcreate.NewService(jobcreate.ServiceConfig{Repository: m, Logger: log.Noop})
			require.NoError(t, err)

			job, err := svc.Run(context.Background(), jobcreate.Request{Config: test.config})

			if test.expErr {
				require.Error(t, err)
				if test.expValidErr {
					assert.True(t, errors.Is(err, model.ErrNotValid))
				}
			} else {
				require.NoError(t, err)
				test.check(t, job)
			}

			m.AssertExpectations(t)
		})
	}
}
