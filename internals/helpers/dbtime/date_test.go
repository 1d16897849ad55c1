package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	// full timestamp is coerced to day granularity
	d, err = Parse("2026-03-15T18:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	// empty and null mean "no date"
	d, err = Parse("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = Parse("15/03/2026")
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	d, err := Parse("2026-03-15")
	require.NoError(t, err)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(b))

	var out Date
	require.NoError(t, out.UnmarshalJSON(b))
	assert.True(t, d.Equal(out))

	b, err = Date{}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	require.NoError(t, out.UnmarshalJSON([]byte("null")))
	assert.True(t, out.IsZero())
}

func TestScanValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-15", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
