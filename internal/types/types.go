package types

import (
	"fmt"
	"go/token"

	"gopkg.in/yaml.v3"
)

// Issue represents a lint issue found in a stylesheet.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      token.Position
	End        token.Position
	Confidence float64
	Severity   Severity
}

// Severity is the reporting level of a rule.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "OFF"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	}
	return "UNKNOWN"
}

// MarshalYAML implements yaml.Marshaler.
func (s Severity) MarshalYAML() (interface{}, error) {
	switch s {
	case SeverityOff:
		return "off", nil
	case SeverityError:
		return "error", nil
	case SeverityWarning:
		return "warning", nil
	case SeverityInfo:
		return "info", nil
	}
	return nil, fmt.Errorf("unknown severity: %d", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "off":
		*s = SeverityOff
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", value.Value)
	}
	return nil
}

// ConfigRule holds the per-rule settings from the configuration file.
// Severity is required: SeverityOff is the zero value, so an entry that
// sets only a threshold and omits severity disables the rule.
type ConfigRule struct {
	Severity  Severity `yaml:"severity"`
	Threshold int      `yaml:"threshold,omitempty"`
}
