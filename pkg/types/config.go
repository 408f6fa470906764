// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds settings for the single registry request.
type HTTPConfig struct {
	// Timeout bounds the whole request, including reading the body.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header identifying the calling tool.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// Accept is the content-negotiation media type.
	Accept string `json:"accept" yaml:"accept" mapstructure:"accept"`
}

// SyncConfig holds settings for a sync run.
type SyncConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// ORCID is the researcher identifier whose works are fetched.
	ORCID string `json:"orcid" yaml:"orcid" mapstructure:"orcid"`

	// APIBase is the registry API root (e.g. "https://pub.orcid.org/v3.0").
	APIBase string `json:"api_base" yaml:"api_base" mapstructure:"api_base"`

	// OutputPath is the snapshot file to overwrite.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"out"`

	// UpdatedBy is the provenance tag written to the envelope.
	UpdatedBy string `json:"updated_by" yaml:"updated_by" mapstructure:"updated_by"`
}

// IndexConfig holds settings for the local SQLite index.
type IndexConfig struct {
	// DBPath is the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db"`

	// MaxResults caps query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}
