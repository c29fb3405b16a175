package config

// LogConfig controls log output format and verbosity.
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// BridgeConfig identifies the Hue bridge and the credential used to talk to it.
//
// Address, BridgeID, and AppKey must be acquired while on the same network as
// the bridge (https://discovery.meethue.com and the Hue API v2 getting-started
// flow). All three are validated against the fixed formats the Hue API
// documents before a connection is created.
type BridgeConfig struct {
	Address  string `yaml:"address" mapstructure:"address"`     // dotted-quad IPv4 of the bridge
	BridgeID string `yaml:"bridge_id" mapstructure:"bridge_id"` // 16 lowercase hex chars, pinned as the TLS server name
	AppKey   string `yaml:"app_key" mapstructure:"app_key"`     // 40-char application key
	// RootCAFile points at the pinned Signify root certificate shipped
	// with the device image.
	RootCAFile string `yaml:"root_ca_file" mapstructure:"root_ca_file"`
}

// DispatchConfig controls delivery retry behaviour.
type DispatchConfig struct {
	// RetryLimit is the number of additional delivery attempts after the
	// first before a request is dropped.
	RetryLimit int `yaml:"retry_limit" mapstructure:"retry_limit"`
	// RetryBackoffSeconds is the pause between attempts.
	RetryBackoffSeconds Duration `yaml:"retry_backoff_seconds" mapstructure:"retry_backoff_seconds"`
	// RequestTimeoutSeconds bounds a single HTTPS call.
	RequestTimeoutSeconds Duration `yaml:"request_timeout_seconds" mapstructure:"request_timeout_seconds"`
}

// TracingConfig controls the OpenTelemetry tracer provider.
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" mapstructure:"exporter"` // "stdout" | "disabled"
	ServiceName string  `yaml:"service_name" mapstructure:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio" mapstructure:"sample_ratio"`
}
