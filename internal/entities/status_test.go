package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusWireEncoding(t *testing.T) {
	assert.EqualValues(t, 0, StatusNew.Wire())
	assert.EqualValues(t, 1, StatusInProgress.Wire())
	// "на проверке" на проводе неотличимо от "в работе"
	assert.EqualValues(t, 1, StatusReview.Wire())
	assert.EqualValues(t, 2, StatusCompleted.Wire())
}

func TestStatusFromWire_NeverProducesReview(t *testing.T) {
	for code := int16(0); code <= 2; code++ {
		st, err := StatusFromWire(code)
		require.NoError(t, err)
		assert.NotEqual(t, StatusReview, st)
	}
}

func TestStatusFromWire_UnknownOrdinal(t *testing.T) {
	_, err := StatusFromWire(3)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("review")
	require.NoError(t, err)
	assert.Equal(t, StatusReview, st)

	_, err = ParseStatus("done")
	assert.Error(t, err)
}
