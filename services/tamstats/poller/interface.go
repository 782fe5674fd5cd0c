package poller

// Extractor pulls the metric value out of a raw response body
type Extractor interface {
	Extract(body []byte) (string, error)
	IsInterfaceNil() bool
}
