package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rankedFixture() RankedModelList {
	return RankedModelList{Models: []ModelScore{
		{ModelID: "a", Percentage: 90},
		{ModelID: "b", Percentage: 75},
		{ModelID: "c", Percentage: 60},
		{ModelID: "d", Percentage: 40},
		{ModelID: "e", Percentage: 20},
	}}
}

func TestTopMatches(t *testing.T) {
	l := rankedFixture()

	top := l.TopMatches(3)
	assert.Len(t, top, 3)
	assert.Equal(t, "a", top[0].ModelID)
	assert.Equal(t, "c", top[2].ModelID)
}

func TestTopMatches_NLargerThanList(t *testing.T) {
	l := rankedFixture()
	assert.Len(t, l.TopMatches(10), 5)
}

func TestBottomMatches_WorstFirst(t *testing.T) {
	l := rankedFixture()

	bottom := l.BottomMatches(3)
	assert.Len(t, bottom, 3)
	// Worst match leads the slice.
	assert.Equal(t, "e", bottom[0].ModelID)
	assert.Equal(t, "d", bottom[1].ModelID)
	assert.Equal(t, "c", bottom[2].ModelID)
}

func TestBottomMatches_DoesNotMutateList(t *testing.T) {
	l := rankedFixture()
	_ = l.BottomMatches(2)
	assert.Equal(t, "a", l.Models[0].ModelID)
	assert.Equal(t, "e", l.Models[4].ModelID)
}

func TestMatches_EmptyList(t *testing.T) {
	var l RankedModelList
	assert.Empty(t, l.TopMatches(3))
	assert.Empty(t, l.BottomMatches(3))
}
