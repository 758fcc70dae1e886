package filter

import (
	"fmt"
	"time"

	"gopkg.in/guregu/null.v3"
	"gopkg.in/yaml.v3"
)

// YAML decoding for partial filters. The null types carry no YAML support
// of their own, so each filter decodes through a pointer-based raw struct:
// a missing key stays nil and maps to the invalid (unset) null value,
// while an explicit false or 0 survives as a set value.

type rawConsole struct {
	Error   *bool `yaml:"error"`
	Warning *bool `yaml:"warning"`
	Info    *bool `yaml:"info"`
	Trace   *bool `yaml:"trace"`

	TruncateLength       *int64     `yaml:"truncate_length"`
	IncludeStringFilters StringList `yaml:"include"`
	ExcludeStringFilters StringList `yaml:"exclude"`
	StartTime            *time.Time `yaml:"start_time"`
	EndTime              *time.Time `yaml:"end_time"`
}

// UnmarshalYAML decodes a partial console filter from a config mapping
func (c *Console) UnmarshalYAML(value *yaml.Node) error {
	var raw rawConsole
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("parsing console filter: %w", err)
	}

	c.Error = null.BoolFromPtr(raw.Error)
	c.Warning = null.BoolFromPtr(raw.Warning)
	c.Info = null.BoolFromPtr(raw.Info)
	c.Trace = null.BoolFromPtr(raw.Trace)
	c.TruncateLength = null.IntFromPtr(raw.TruncateLength)
	c.IncludeStringFilters = raw.IncludeStringFilters
	c.ExcludeStringFilters = raw.ExcludeStringFilters
	c.StartTime = null.TimeFromPtr(raw.StartTime)
	c.EndTime = null.TimeFromPtr(raw.EndTime)
	return nil
}

type rawNetwork struct {
	StatusInfo        *bool `yaml:"info"`
	StatusSuccess     *bool `yaml:"success"`
	StatusRedirect    *bool `yaml:"redirect"`
	StatusClientError *bool `yaml:"client_error"`
	StatusServerError *bool `yaml:"server_error"`

	IncludeHeaders     *bool `yaml:"headers"`
	IncludeBody        *bool `yaml:"body"`
	IncludeQueryParams *bool `yaml:"query_params"`

	TruncateLength       *int64     `yaml:"truncate_length"`
	IncludeStringFilters StringList `yaml:"include"`
	ExcludeStringFilters StringList `yaml:"exclude"`
	StartTime            *time.Time `yaml:"start_time"`
	EndTime              *time.Time `yaml:"end_time"`
}

// UnmarshalYAML decodes a partial network filter from a config mapping
func (n *Network) UnmarshalYAML(value *yaml.Node) error {
	var raw rawNetwork
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("parsing network filter: %w", err)
	}

	n.StatusInfo = null.BoolFromPtr(raw.StatusInfo)
	n.StatusSuccess = null.BoolFromPtr(raw.StatusSuccess)
	n.StatusRedirect = null.BoolFromPtr(raw.StatusRedirect)
	n.StatusClientError = null.BoolFromPtr(raw.StatusClientError)
	n.StatusServerError = null.BoolFromPtr(raw.StatusServerError)
	n.IncludeHeaders = null.BoolFromPtr(raw.IncludeHeaders)
	n.IncludeBody = null.BoolFromPtr(raw.IncludeBody)
	n.IncludeQueryParams = null.BoolFromPtr(raw.IncludeQueryParams)
	n.TruncateLength = null.IntFromPtr(raw.TruncateLength)
	n.IncludeStringFilters = raw.IncludeStringFilters
	n.ExcludeStringFilters = raw.ExcludeStringFilters
	n.StartTime = null.TimeFromPtr(raw.StartTime)
	n.EndTime = null.TimeFromPtr(raw.EndTime)
	return nil
}
