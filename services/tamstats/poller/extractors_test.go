package poller

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateReport(numFields int, valueAt int, value string) string {
	fields := make([]string, 0, numFields)
	for i := 0; i < numFields; i++ {
		if i == valueAt {
			fields = append(fields, value)
			continue
		}
		fields = append(fields, fmt.Sprintf("f%d", i))
	}

	return strings.Join(fields, " \t\n")
}

func TestFieldExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("should return the field at the index", func(t *testing.T) {
		t.Parallel()

		extractor := NewFieldExtractor(TamUsageFieldIndex)
		assert.False(t, extractor.IsInterfaceNil())

		value, err := extractor.Extract([]byte(generateReport(60, TamUsageFieldIndex, "42")))
		require.Nil(t, err)
		assert.Equal(t, "42", value)
	})
	t.Run("short response should error", func(t *testing.T) {
		t.Parallel()

		extractor := NewFieldExtractor(TamUsageFieldIndex)
		value, err := extractor.Extract([]byte(generateReport(56, -1, "")))
		assert.Empty(t, value)
		assert.Equal(t, errFieldOutOfRange{index: 56, numFields: 56}, err)
		assert.Contains(t, err.Error(), "out of range")
	})
	t.Run("empty response should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFieldExtractor(0).Extract(nil)
		assert.Equal(t, errFieldOutOfRange{index: 0, numFields: 0}, err)
	})
	t.Run("negative index should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFieldExtractor(-1).Extract([]byte("a b c"))
		assert.IsType(t, errFieldOutOfRange{}, err)
	})
}

func TestJSONPathExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := NewJSONPathExtractor("data.tam.usage")
	assert.False(t, extractor.IsInterfaceNil())

	value, err := extractor.Extract([]byte(`{"data": {"tam": {"usage": 314}}}`))
	require.Nil(t, err)
	assert.Equal(t, "314", value)

	value, err = extractor.Extract([]byte(`{"data": {"other": {"usage": 314}}}`))
	assert.Empty(t, value)
	assert.Equal(t, errPathNotFound("data.tam.usage"), err)
}
