package common

// Sample is a single recorded metric value as it is stored in the history file
type Sample struct {
	Timestamp string
	Value     string
}

// PointSeries is the serialized points array sent to a Dashing graph widget
type PointSeries struct {
	Raw       string
	NumPoints int
}
