package model

import (
	"runtime"
	"time"
)

// Config is the full runtime configuration. Every threshold the engine
// uses is tunable here; the defaults mirror what worked in production,
// not architectural invariants.
type Config struct {
	Normalize   NormalizeConfig   `yaml:"normalize" mapstructure:"normalize"`
	Locate      LocateConfig      `yaml:"locate" mapstructure:"locate"`
	Highlight   HighlightConfig   `yaml:"highlight" mapstructure:"highlight"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// NormalizeConfig tunes the document normalization pipeline
type NormalizeConfig struct {
	// MinInlinePipes is the pipe count above which a single line is
	// probed for a collapsed inline table.
	MinInlinePipes int `yaml:"min_inline_pipes" mapstructure:"min_inline_pipes"`

	// HeadingMaxLen caps how long a line may be and still be promoted
	// to a heading.
	HeadingMaxLen int `yaml:"heading_max_len" mapstructure:"heading_max_len"`

	// ReflowMeanThreshold: when the mean paragraph length is below
	// this, the reflow stage leaves text alone (idempotence guard).
	ReflowMeanThreshold int `yaml:"reflow_mean_threshold" mapstructure:"reflow_mean_threshold"`

	// ReflowMaxParagraph: paragraphs longer than this get split.
	ReflowMaxParagraph int `yaml:"reflow_max_paragraph" mapstructure:"reflow_max_paragraph"`

	// ReflowTargetChunk is the approximate size of the split chunks.
	ReflowTargetChunk int `yaml:"reflow_target_chunk" mapstructure:"reflow_target_chunk"`
}

// LocateConfig tunes the quote localization cascade
type LocateConfig struct {
	// FuzzyPrefixLen is how many leading characters of the quote the
	// fuzzy strategy searches for.
	FuzzyPrefixLen int `yaml:"fuzzy_prefix_len" mapstructure:"fuzzy_prefix_len"`
}

// HighlightConfig tunes highlight injection
type HighlightConfig struct {
	// BroadMatchThreshold suppresses highlights spanning more than
	// this fraction of the document.
	BroadMatchThreshold float64 `yaml:"broad_match_threshold" mapstructure:"broad_match_threshold"`

	// MarkerStart/MarkerEnd wrap the matched span. The defaults are
	// what the web reader's scroll anchoring looks for.
	MarkerStart string `yaml:"marker_start" mapstructure:"marker_start"`
	MarkerEnd   string `yaml:"marker_end" mapstructure:"marker_end"`
}

// CacheConfig controls the normalized-output cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir     string        `yaml:"dir" mapstructure:"dir"` // disk layer, memory-only when empty
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// DefaultMarkerStart is the highlight marker the bundled reader UI
// anchors its scroll position to.
const DefaultMarkerStart = `<mark id="evidence-mark" data-evidence-mark="true">`

// DefaultMarkerEnd closes DefaultMarkerStart
const DefaultMarkerEnd = `</mark>`

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Normalize: NormalizeConfig{
			MinInlinePipes:      6,
			HeadingMaxLen:       80,
			ReflowMeanThreshold: 500,
			ReflowMaxParagraph:  600,
			ReflowTargetChunk:   400,
		},
		Locate: LocateConfig{
			FuzzyPrefixLen: 50,
		},
		Highlight: HighlightConfig{
			BroadMatchThreshold: 0.30,
			MarkerStart:         DefaultMarkerStart,
			MarkerEnd:           DefaultMarkerEnd,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{},
	}
}
