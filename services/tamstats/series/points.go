package series

import (
	"strconv"
	"strings"

	"github.com/iulianpascalau/dashing-jobs/services/tamstats/common"
)

const emptyPoints = "[]"

// BuildPoints renders the values as a Dashing graph points array: [{"x":1,"y":v1},{"x":2,"y":v2},...].
// The x coordinate is the 1-based position of the value. Values are written verbatim, without quoting,
// as they were read from the history file
func BuildPoints(values []string) common.PointSeries {
	if len(values) == 0 {
		return common.PointSeries{
			Raw:       emptyPoints,
			NumPoints: 0,
		}
	}

	builder := strings.Builder{}
	builder.WriteByte('[')
	for i, value := range values {
		if i > 0 {
			builder.WriteByte(',')
		}

		builder.WriteString(`{"x":`)
		builder.WriteString(strconv.Itoa(i + 1))
		builder.WriteString(`,"y":`)
		builder.WriteString(value)
		builder.WriteByte('}')
	}
	builder.WriteByte(']')

	return common.PointSeries{
		Raw:       builder.String(),
		NumPoints: len(values),
	}
}
