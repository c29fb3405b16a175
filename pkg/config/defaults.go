package config

// ApplyDefaults applies dispatch retry defaults.
func (d *DispatchConfig) ApplyDefaults() {
	if d.RetryLimit < 0 {
		d.RetryLimit = 0
	}
	if d.RetryBackoffSeconds <= 0 {
		d.RetryBackoffSeconds = 1
	}
	if d.RequestTimeoutSeconds <= 0 {
		d.RequestTimeoutSeconds = 5
	}
}

// ApplyDefaults applies tracing defaults.
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "disabled"
	}
	if t.ServiceName == "" {
		t.ServiceName = "hue-dispatch"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}
