package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Profile is a reusable run configuration loaded from a YAML file, so a
// recurring reconciliation job does not need its column mapping spelled out
// on every invocation. Only the fields present in the file are applied, and
// flags set explicitly on the command line always win.
type Profile struct {
	DestMatch    string  `yaml:"dest_match"`
	SourceMatch  string  `yaml:"source_match"`
	DestColumn   string  `yaml:"dest_column"`
	SourceColumn string  `yaml:"source_column"`
	DestMinRow   *int    `yaml:"dest_min_row"`
	DestMaxRow   *int    `yaml:"dest_max_row"`
	SourceMinRow *int    `yaml:"source_min_row"`
	SourceMaxRow *int    `yaml:"source_max_row"`
	Threshold    *int    `yaml:"threshold"`
	Weighted     *bool   `yaml:"weighted"`
	IgnoreCase   *bool   `yaml:"ignore_case"`
	Highlight    *string `yaml:"highlight"`
	Strict       *bool   `yaml:"strict"`
	NoBackup     *bool   `yaml:"no_backup"`
	Output       *string `yaml:"output"`
}

// LoadProfile reads and parses a profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	var p Profile
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply copies the profile's set fields onto opts, skipping any option whose
// flag was changed on the command line according to flagChanged.
func (p *Profile) Apply(opts *Options, flagChanged func(name string) bool) {
	setString := func(flag string, dst *string, val string) {
		if val != "" && !flagChanged(flag) {
			*dst = val
		}
	}
	setString("dest-match", &opts.DestMatchColumn, p.DestMatch)
	setString("source-match", &opts.SourceMatchColumn, p.SourceMatch)
	setString("dest-column", &opts.DestDataColumn, p.DestColumn)
	setString("source-column", &opts.SourceDataColumn, p.SourceColumn)

	setInt := func(flag string, dst *int, val *int) {
		if val != nil && !flagChanged(flag) {
			*dst = *val
		}
	}
	setInt("dest-min-row", &opts.DestMinRow, p.DestMinRow)
	setInt("dest-max-row", &opts.DestMaxRow, p.DestMaxRow)
	setInt("source-min-row", &opts.SourceMinRow, p.SourceMinRow)
	setInt("source-max-row", &opts.SourceMaxRow, p.SourceMaxRow)
	setInt("threshold", &opts.Threshold, p.Threshold)

	setBool := func(flag string, dst *bool, val *bool) {
		if val != nil && !flagChanged(flag) {
			*dst = *val
		}
	}
	setBool("weighted", &opts.Weighted, p.Weighted)
	setBool("ignore-case", &opts.IgnoreCase, p.IgnoreCase)
	setBool("strict", &opts.Strict, p.Strict)
	setBool("no-backup", &opts.NoBackup, p.NoBackup)

	if p.Highlight != nil && !flagChanged("color-highlight") {
		opts.Highlight = *p.Highlight
	}
	if p.Output != nil && !flagChanged("output") {
		opts.Output = *p.Output
	}
}
