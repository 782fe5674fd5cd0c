package poller

import (
	"fmt"
	"net/http"
)

type errStatusNotOK int

func (e errStatusNotOK) Error() string {
	return "non-2xx HTTP status code: " + http.StatusText(int(e))
}

type errPathNotFound string

func (e errPathNotFound) Error() string {
	return "JSON path not found in response: " + string(e)
}

type errFieldOutOfRange struct {
	index     int
	numFields int
}

func (e errFieldOutOfRange) Error() string {
	return fmt.Sprintf("field index %d out of range, response has %d fields", e.index, e.numFields)
}

type errEmptyValue struct{}

func (e errEmptyValue) Error() string {
	return "empty value extracted from response"
}

type errInvalidValue string

func (e errInvalidValue) Error() string {
	return fmt.Sprintf("extracted value %q does not fit on a history line", string(e))
}
