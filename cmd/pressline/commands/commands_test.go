package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/makspress/pressline/internal/model"
)

func TestParseSortOrder(t *testing.T) {
	tests := map[string]struct {
		input   string
		expSort model.SortOrder
	}{
		"Oldest should map to the ascending order": {
			input:   "oldest",
			expSort: model.SortOldest,
		},
		"Newest should map to the descending order": {
			input:   "newest",
			expSort: model.SortNewest,
		},
		"Anything else should fall back to newest": {
			input:   "",
			expSort: model.SortNewest,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expSort, parseSortOrder(tc.input))
		})
	}
}
