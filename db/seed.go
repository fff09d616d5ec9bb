// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/love-wall/models"
)

type seedFile struct {
	Events []models.EventInput `yaml:"events"`
}

// LoadSeed reads a YAML list of events:
//
//	events:
//	  - name: Spring Fair
//	    location_name: Town Square
//	    latitude: 51.5
//	    longitude: -0.12
//	    date: 2025-04-01
//	    description: Stalls and music
func LoadSeed(path string) ([]models.EventInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, ev := range f.Events {
		if _, err := time.Parse(models.EventDateLayout, ev.Date); err != nil {
			return nil, fmt.Errorf("seed event %d (%q): invalid date %q", i, ev.Name, ev.Date)
		}
	}

	return f.Events, nil
}
