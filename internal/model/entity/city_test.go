package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsOfInterestScan(t *testing.T) {
	raw := `[{"name": "Louvre", "rating": 4.7}]`

	var fromBytes PointsOfInterest
	require.NoError(t, fromBytes.Scan([]byte(raw)))
	require.Len(t, fromBytes, 1)
	assert.Equal(t, "Louvre", fromBytes[0].Name)
	require.NotNil(t, fromBytes[0].Rating)
	assert.Equal(t, 4.7, *fromBytes[0].Rating)
	assert.Nil(t, fromBytes[0].PhotoURL)

	var fromString PointsOfInterest
	require.NoError(t, fromString.Scan(raw))
	assert.Equal(t, fromBytes, fromString)

	var fromNil PointsOfInterest
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	var fromInt PointsOfInterest
	assert.Error(t, fromInt.Scan(42))
}

func TestPointsOfInterestValue(t *testing.T) {
	var empty PointsOfInterest
	value, err := empty.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(value.([]byte)))
}
