package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

func TestSheetNameFor(t *testing.T) {
	assert.Equal(t, "Sydney", SheetNameFor(model.RegionSydney))
	assert.Equal(t, "Adelaide", SheetNameFor(model.RegionAdelaide))
	assert.Equal(t, FallbackSheet, SheetNameFor(model.Region("Atlantis")))
	assert.Equal(t, FallbackSheet, SheetNameFor(model.Region("")))
}

func TestSheetNames(t *testing.T) {
	names := SheetNames()
	assert.Len(t, names, len(model.Regions())+1)
	for _, region := range model.Regions() {
		assert.Contains(t, names, string(region))
	}
	assert.Equal(t, FallbackSheet, names[len(names)-1])
}
