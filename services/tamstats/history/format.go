package history

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
)

const (
	// FieldSeparator separates the fields of a history line
	FieldSeparator = ", "
	// TimestampLayout is the layout of the timestamp field, minute resolution
	TimestampLayout = "2006-01-02 15:04"
	// HeaderPrefix marks the header line of a history file
	HeaderPrefix = "#"

	timestampField = 0
	valueField     = 1
	minNumFields   = 2
)

// ErrMalformedLine signals a history line that does not follow the "timestamp, value" layout
var ErrMalformedLine = errors.New("malformed history line")

// ErrInvalidValue signals a value that can not be stored on a single history line
var ErrInvalidValue = errors.New("invalid history value")

// NewSample creates a sample stamped with the provided moment
func NewSample(at time.Time, value string) common.Sample {
	return common.Sample{
		Timestamp: at.Format(TimestampLayout),
		Value:     value,
	}
}

// FormatSample renders a sample as a history line, without the line terminator
func FormatSample(sample common.Sample) string {
	return sample.Timestamp + FieldSeparator + sample.Value
}

// CheckValue returns ErrInvalidValue if the value is empty or holds whitespace or a comma. Such a value
// would split the line or break the "timestamp, value" layout
func CheckValue(value string) error {
	if len(value) == 0 {
		return fmt.Errorf("%w: empty value", ErrInvalidValue)
	}
	if strings.IndexFunc(value, isForbiddenInValue) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}

	return nil
}

func isForbiddenInValue(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// ParseSample decodes a history line produced by FormatSample
func ParseSample(line string) (common.Sample, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, FieldSeparator)
	if len(fields) < minNumFields {
		return common.Sample{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	return common.Sample{
		Timestamp: fields[timestampField],
		Value:     strings.TrimSpace(fields[valueField]),
	}, nil
}

// IsHeader returns true if the line is a history header line
func IsHeader(line string) bool {
	return strings.HasPrefix(line, HeaderPrefix)
}
