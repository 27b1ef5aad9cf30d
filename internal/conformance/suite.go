// Package conformance loads language conformance suites: YAML documents
// listing programs along with the state and output expected after running
// them.
package conformance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a named list of cases, loaded from one file.
type Suite struct {
	Name  string `yaml:"-"`
	About string `yaml:"about"`
	Cases []Case `yaml:"cases"`
}

// Case is a program, given as one or more code strings to evaluate in order
// against the same state.
type Case struct {
	Name             string   `yaml:"name"`
	Code             []string `yaml:"code"`
	Input            string   `yaml:"input"`
	FlatConditionals bool     `yaml:"flat_conditionals"`
	Expect           Expect   `yaml:"expect"`
}

// Expect describes the outcome of a Case; any field left out is not checked,
// except that no error is expected unless Error or Exit is given.
type Expect struct {
	Stack  []int64 `yaml:"stack"`
	Output *string `yaml:"output"`
	Error  string  `yaml:"error"`
	Exit   *int    `yaml:"exit"`
}

// Load decodes a suite from r; unknown fields are an error.
func Load(name string, r io.Reader) (suite Suite, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&suite); err != nil {
		return suite, fmt.Errorf("failed to decode %v: %w", name, err)
	}
	suite.Name = name
	for i, c := range suite.Cases {
		if c.Name == "" {
			return suite, fmt.Errorf("%v: case #%v has no name", name, i+1)
		}
		if len(c.Code) == 0 {
			return suite, fmt.Errorf("%v: case %q has no code", name, c.Name)
		}
		if c.Expect.Error != "" && c.Expect.Exit != nil {
			return suite, fmt.Errorf("%v: case %q expects both an error and an exit", name, c.Name)
		}
	}
	return suite, nil
}

// LoadDir loads every *.yaml file in dir, in name order, naming each suite
// after its file.
func LoadDir(dir string) ([]Suite, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	suites := make([]Suite, 0, len(names))
	for _, name := range names {
		suite, err := loadFile(name)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func loadFile(name string) (Suite, error) {
	f, err := os.Open(name)
	if err != nil {
		return Suite{}, err
	}
	defer f.Close()
	return Load(strings.TrimSuffix(filepath.Base(name), ".yaml"), f)
}
