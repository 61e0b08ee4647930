package versionlist_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/makspress/pressline/internal/app/versionlist"
	"github.com/makspress/pressline/internal/log"
	"github.com/makspress/pressline/internal/model"
	"github.com/makspress/pressline/internal/storage/storagemock"
)

func TestServiceRun(t *testing.T) {
	versions := []model.ManuscriptVersion{
		{ID: "MS-2", Status: model.ManuscriptStatusProofSent, CreatedAt: time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)},
		{ID: "MS-1", Status: model.ManuscriptStatusDraft, CreatedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)},
	}

	tests := map[string]struct {
		mock   func(m *storagemock.MockManuscriptRepository)
		expErr bool
		exp    []model.ManuscriptVersion
	}{
		"versions are returned as stored": {
			mock: func(m *storagemock.MockManuscriptRepository) {
				m.On("ListVersions", mock.Anything).Once().Return(versions, nil)
			},
			exp: versions,
		},
		"empty history is not an error": {
			mock: func(m *storagemock.MockManuscriptRepository) {
				m.On("ListVersions", mock.Anything).Once().Return([]model.ManuscriptVersion{}, nil)
			},
			exp: []model.ManuscriptVersion{},
		},
		"repository error propagates": {
			mock: func(m *storagemock.MockManuscriptRepository) {
				m.On("ListVersions", mock.Anything).Once().Return(nil, errors.New("boom"))
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := &storagemock.MockManuscriptRepository{}
			test.mock(m)

			svc, err := versionlist.NewService(versionlist.ServiceConfig{Repository: m, Logger: log.Noop})
			require.NoError(t, err)

			got, err := svc.Run(context.Background())

			if test.expErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.exp, got)
			}

			m.AssertExpectations(t)
		})
	}
}
