// SPDX-License-Identifier: MIT

package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/epimob/segment"
)

func TestPartition_Validate(t *testing.T) {
	ok := segment.Partition{Hotspots: []int{0, 2}, Suburbs: []int{1}}
	assert.NoError(t, ok.Validate(3))

	assert.ErrorIs(t, segment.Partition{Hotspots: []int{3}}.Validate(3), segment.ErrIndexOutOfRange)
	assert.ErrorIs(t, segment.Partition{Suburbs: []int{-1}}.Validate(3), segment.ErrIndexOutOfRange)
	assert.ErrorIs(t, segment.Partition{Hotspots: []int{1}, Suburbs: []int{1}}.Validate(3), segment.ErrOverlap)
	assert.ErrorIs(t, segment.Partition{Hotspots: []int{0, 0}}.Validate(3), segment.ErrOverlap)

	assert.NoError(t, segment.Partition{}.Validate(3), "a partial partition is allowed")
}

func TestPartition_LabelsAndEmpty(t *testing.T) {
	p := segment.Partition{Hotspots: []int{2, 0}, Suburbs: []int{1}}
	assert.Equal(t, []bool{true, false, true}, p.Labels(3))
	assert.False(t, p.IsEmpty())

	assert.True(t, segment.Partition{}.IsEmpty())
}
