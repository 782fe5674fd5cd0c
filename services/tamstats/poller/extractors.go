package poller

import (
	"strings"

	"github.com/tidwall/gjson"
)

// TamUsageFieldIndex is the 0-based position of the TAM usage in the whitespace-delimited report returned by
// the Sabre stats endpoint. The report has no schema, the position is an assumption that should be checked
// against a live response whenever the upstream changes
const TamUsageFieldIndex = 56

type fieldExtractor struct {
	index int
}

// NewFieldExtractor returns an extractor that splits the body on whitespace and returns the field found at index
func NewFieldExtractor(index int) *fieldExtractor {
	return &fieldExtractor{
		index: index,
	}
}

// Extract returns the field at the configured index
func (fe *fieldExtractor) Extract(body []byte) (string, error) {
	fields := strings.Fields(string(body))
	if fe.index < 0 || fe.index >= len(fields) {
		return "", errFieldOutOfRange{
			index:     fe.index,
			numFields: len(fields),
		}
	}

	return fields[fe.index], nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (fe *fieldExtractor) IsInterfaceNil() bool {
	return fe == nil
}

type jsonPathExtractor struct {
	path string
}

// NewJSONPathExtractor returns an extractor that reads the value found at the gjson path (e.g. "data.tam.usage")
func NewJSONPathExtractor(path string) *jsonPathExtractor {
	return &jsonPathExtractor{
		path: path,
	}
}

// Extract returns the value found at the configured JSON path
func (je *jsonPathExtractor) Extract(body []byte) (string, error) {
	result := gjson.GetBytes(body, je.path)
	if !result.Exists() {
		return "", errPathNotFound(je.path)
	}

	return result.String(), nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (je *jsonPathExtractor) IsInterfaceNil() bool {
	return je == nil
}
