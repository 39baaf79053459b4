package projects

// Recorder receives provider telemetry. internal/http.Metrics implements it.
type Recorder interface {
	SetProviderMode(mode string)
	RecordDemotion(op string)
	RecordBackendCall(op, outcome string)
	RecordLocalWrite(outcome string)
	SetProjectCount(count int)
}

type nopRecorder struct{}

func (nopRecorder) SetProviderMode(string)           {}
func (nopRecorder) RecordDemotion(string)            {}
func (nopRecorder) RecordBackendCall(string, string) {}
func (nopRecorder) RecordLocalWrite(string)          {}
func (nopRecorder) SetProjectCount(int)              {}
