package history

import (
	"testing"
	"time"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, time.March, 7, 9, 5, 59, 0, time.Local)
	sample := NewSample(at, "42")

	assert.Equal(t, "2026-03-07 09:05", sample.Timestamp)
	assert.Equal(t, "42", sample.Value)
}

func TestFormatAndParseSample(t *testing.T) {
	t.Parallel()

	t.Run("format should use the field separator", func(t *testing.T) {
		t.Parallel()

		line := FormatSample(common.Sample{Timestamp: "2026-03-07 09:05", Value: "42"})
		assert.Equal(t, "2026-03-07 09:05, 42", line)
	})
	t.Run("parse should return the formatted sample", func(t *testing.T) {
		t.Parallel()

		samples := []common.Sample{
			{Timestamp: "2026-03-07 09:05", Value: "42"},
			{Timestamp: "2026-12-31 23:59", Value: "0"},
			{Timestamp: "2027-01-01 00:00", Value: "1337.5"},
		}
		for _, sample := range samples {
			parsed, err := ParseSample(FormatSample(sample))
			require.Nil(t, err)
			assert.Equal(t, sample, parsed)
		}
	})
	t.Run("parse should strip line terminators", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseSample("2026-03-07 09:05, 42\r\n")
		require.Nil(t, err)
		assert.Equal(t, "42", parsed.Value)
	})
	t.Run("parse should take the second field only", func(t *testing.T) {
		t.Parallel()

		parsed, err := ParseSample("2026-03-07 09:05, 42, extra")
		require.Nil(t, err)
		assert.Equal(t, "42", parsed.Value)
	})
	t.Run("line without separator should error", func(t *testing.T) {
		t.Parallel()

		_, err := ParseSample("2026-03-07 09:05 42")
		assert.ErrorIs(t, err, ErrMalformedLine)
	})
}

func TestCheckValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CheckValue("42"))
	assert.Nil(t, CheckValue("-3.5"))
	assert.ErrorIs(t, CheckValue(""), ErrInvalidValue)
	assert.ErrorIs(t, CheckValue("12\n34"), ErrInvalidValue)
	assert.ErrorIs(t, CheckValue("12, 34"), ErrInvalidValue)
	assert.ErrorIs(t, CheckValue("1,2"), ErrInvalidValue)
	assert.ErrorIs(t, CheckValue("1\t2"), ErrInvalidValue)
}

func TestIsHeader(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHeader("# Time, TAM Sessions"))
	assert.True(t, IsHeader("#"))
	assert.False(t, IsHeader("2026-03-07 09:05, 42"))
	assert.False(t, IsHeader(""))
}
