package versionapprove_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/app/versionapprove"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	approved := &model.ManuscriptVersion{ID: "MS-1", Status: model.ManuscriptStatusApproved}

	tests := map[string]struct {
		request versionapprove.Request
		mock    func(m *storagemock.MockManuscriptRepository)
		expErr  error
	}{
		"a version is approved": {
			request: versionapprove.Request{VersionID: "MS-1"},
			mock: func(m *storagemock.MockManuscriptRepository) {
				m.On("ApproveVersion", mock.Anything, "MS-1").Once().Return(approved, nil)
			},
		},
		"missing id is rejected": {
			request: versionapprove.Request{},
			mock:    func(m *storagemock.MockManuscriptRepository) {},
			expErr:  model.ErrNotValid,
		},
		"unknown version is not found": {
			request: versionapprove.Request{VersionID: "MS-404"},
			mock: func(m *storagemock.MockManuscriptRepository) {
				m.On("ApproveVersion", mock.Anything, "MS-404").Once().Return(nil, model.ErrNotFound)
			},
			expErr: model.ErrNotFound,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := &storagemock.MockManuscriptRepository{}
			test.mock(m)

			svc, err := versionapprove.NewService(versionapprove.ServiceConfig{Repository: m, Logger: log.Noop})
			require.NoError(t, err)

			got, err := svc.Run(context.Background(), test.request)

			if test.expErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, test.expErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.ManuscriptStatusApproved, got.Status)
			}

			m.AssertExpectations(t)
		})
	}
}
