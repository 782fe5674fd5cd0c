package engine

type jobState string

const (
	stateInit         jobState = "Init"
	stateFileReady    jobState = "FileReady"
	stateFetched      jobState = "Fetched"
	stateSkippedFetch jobState = "SkippedFetch"
	stateLoaded       jobState = "Loaded"
	stateSerialized   jobState = "Serialized"
	statePublished    jobState = "Published"
	stateDone         jobState = "Done"
)
