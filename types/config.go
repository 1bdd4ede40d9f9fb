package types

// Config holds memsize config
type Config struct {
	Log       LogConfig `yaml:"log" json:"log" toml:"log"`
	SentryDSN string    `yaml:"sentry_dsn" json:"sentry_dsn" toml:"sentry_dsn"`
	Statsd    string    `yaml:"statsd" json:"statsd" toml:"statsd"` // statsd host and port

	MaxConcurrency  int    `yaml:"max_concurrency" json:"max_concurrency" toml:"max_concurrency" default:"8"` // how many option files are checked at the same time
	MaxFileSize     Size   `yaml:"max_file_size" json:"max_file_size" toml:"max_file_size" default:"1M"`      // option files larger than this are refused
	MetricsTextfile string `yaml:"metrics_textfile" json:"metrics_textfile" toml:"metrics_textfile"`          // prometheus textfile written after check

	Options []OptionSpec `yaml:"options" json:"options" toml:"options"` // extra options merged into the catalog
}

// LogConfig define log type
type LogConfig struct {
	Level    string `yaml:"level" json:"level" toml:"level" default:"info"`
	UseJSON  bool   `yaml:"use_json" json:"use_json" toml:"use_json"`
	Filename string `yaml:"filename" json:"filename" toml:"filename"` // log to stderr if empty
}

// OptionSpec declares a memory size option from config
type OptionSpec struct {
	Name    string `yaml:"name" json:"name" toml:"name" required:"true"`
	Type    string `yaml:"type" json:"type" toml:"type" required:"true"` // int32, uint32, int64 or uint64
	Default string `yaml:"default" json:"default" toml:"default"`
	Min     string `yaml:"min" json:"min" toml:"min"`
	Max     string `yaml:"max" json:"max" toml:"max"`
	Usage   string `yaml:"usage" json:"usage" toml:"usage"`
}
