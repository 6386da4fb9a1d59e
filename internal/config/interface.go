package config

import "codeberg.org/mutker/errschema/internal/logger"

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	envPrefix  string
	log        logger.Logger
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "ERRSCHEMA"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		if prefix == "" {
			return errInvalidOption("empty environment prefix")
		}
		o.envPrefix = prefix
		return nil
	}
}

// WithLogger routes loading diagnostics to l
func WithLogger(l logger.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return errInvalidOption("nil logger")
		}
		o.log = l
		return nil
	}
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
