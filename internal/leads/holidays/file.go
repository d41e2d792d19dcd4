package holidays

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileDocument struct {
	Holidays []Holiday `yaml:"holidays"`
}

// LoadFile reads a YAML holiday table of the form
//
//	holidays:
//	  - date: "2029-01-01"
//	    name: New Year's Day
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read holiday file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("holiday file %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a YAML holiday table.
func Parse(data []byte) (*Set, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Holidays) == 0 {
		return nil, fmt.Errorf("no holidays listed")
	}
	return FromHolidays(doc.Holidays)
}
