package types

import "fmt"

// Severity is the reporting level of a rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity maps a config string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "off":
		return SeverityOff, nil
	}
	return SeverityError, fmt.Errorf("unknown severity %q", s)
}

// ConfigRule is the per-rule entry of the yaml configuration.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// MarshalYAML writes the severity back as its string form.
func (c ConfigRule) MarshalYAML() (interface{}, error) {
	return struct {
		Severity string `yaml:"severity"`
	}{Severity: c.Severity.String()}, nil
}

// UnmarshalYAML accepts the severity as a plain string.
func (c *ConfigRule) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		Severity string `yaml:"severity"`
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	sev, err := ParseSeverity(raw.Severity)
	if err != nil {
		return err
	}
	c.Severity = sev
	return nil
}
