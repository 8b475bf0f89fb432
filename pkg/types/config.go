package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "protein-design-archive/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AcquisitionConfig holds settings for the structure-file acquisition stage.
type AcquisitionConfig struct {
	HTTPConfig `yaml:",inline"`

	// DownloadDelay is the delay between consecutive downloads (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`

	// CIFDir is the directory holding per-design structure files,
	// named <CODE-UPPERCASE>.cif.
	CIFDir string `json:"cif_dir" yaml:"cif_dir"`
}

// CollectionConfig holds settings for the data-collection pipeline.
type CollectionConfig struct {
	HTTPConfig `yaml:",inline"`

	// CIFDir is the directory holding per-design structure files.
	CIFDir string `json:"cif_dir" yaml:"cif_dir"`

	// LabelTablePath is the curated author→label table (YAML).
	LabelTablePath string `json:"label_table" yaml:"label_table"`

	// CuratedSetPath is the pre-labeled classification dataset (JSON).
	CuratedSetPath string `json:"curated_set" yaml:"curated_set"`

	// OutputPath is where the assembled design collection is written.
	OutputPath string `json:"output" yaml:"output"`

	// SummaryPath is where the per-design diagnostics are written.
	SummaryPath string `json:"summary" yaml:"summary"`
}

// StoreConfig holds settings for the archive index.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "archive.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
