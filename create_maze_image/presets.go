package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"sort"
	"strings"

	maze "github.com/yalue/shaped_maze"
	"gopkg.in/yaml.v3"
)

// A named set of maze parameters. Fields left out of a presets file keep the
// values from maze.DefaultConfig.
type preset struct {
	// Optional path to the template image, relative to the working directory.
	TemplateImage string      `yaml:"template_image"`
	Config        maze.Config `yaml:",inline"`
}

// Maps lowercase preset names to their parameters.
type presets map[string]preset

// Parameters for etc/unit-test.png, a shape used for regression testing.
func builtinPresets() presets {
	cfg := maze.DefaultConfig()
	cfg.CellWidth = 2
	cfg.CellHeight = 2
	cfg.Start = image.Pt(6, 18)
	cfg.End = image.Pt(230, 45)
	cfg.RandomSeed = 654321
	return presets{
		"test": {
			TemplateImage: "etc/unit-test.png",
			Config:        cfg,
		},
	}
}

// Parses a YAML document mapping preset names to parameters. For example:
//
//	heart:
//	  template_image: shapes/heart.png
//	  cell_width: 4
//	  cell_height: 4
//	  start: {x: 3, y: 10}
//	  end: {x: 40, y: 12}
//	  random_seed: 1234
func parsePresets(r io.Reader) (presets, error) {
	var raw map[string]yaml.Node
	e := yaml.NewDecoder(r).Decode(&raw)
	if (e != nil) && (e != io.EOF) {
		return nil, fmt.Errorf("Error parsing presets: %w", e)
	}
	toReturn := make(presets, len(raw))
	for name, node := range raw {
		p := preset{
			Config: maze.DefaultConfig(),
		}
		e = node.Decode(&p)
		if e != nil {
			return nil, fmt.Errorf("Error parsing preset %s: %w", name, e)
		}
		toReturn[strings.ToLower(name)] = p
	}
	return toReturn, nil
}

// Returns the built-in presets, overridden and extended by the ones in the
// given file. An empty filename only returns the built-in presets.
func loadPresets(filename string) (presets, error) {
	toReturn := builtinPresets()
	if filename == "" {
		return toReturn, nil
	}
	f, e := os.Open(filename)
	if e != nil {
		return nil, fmt.Errorf("Error opening presets file: %w", e)
	}
	defer f.Close()
	fromFile, e := parsePresets(f)
	if e != nil {
		return nil, fmt.Errorf("Error loading %s: %w", filename, e)
	}
	for name, p := range fromFile {
		toReturn[name] = p
	}
	return toReturn, nil
}

// Looks up a preset, ignoring case.
func (p presets) get(name string) (preset, error) {
	toReturn, ok := p[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(p))
		for n := range p {
			names = append(names, n)
		}
		sort.Strings(names)
		return preset{}, fmt.Errorf("unknown preset %q (known presets: %s)",
			name, strings.Join(names, ", "))
	}
	return toReturn, nil
}
