package conformance

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var fixtures embed.FS

// LoadedTest pairs a TestCase with the suite and file it came from, so
// callers can build a readable subtest name (spec §8).
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAll reads every embedded YAML fixture under testdata/ and
// flattens it into one slice of LoadedTest, grounded on the teacher's
// LoadAllTests walking a conformance test directory on disk — this
// package walks an embed.FS instead so the fixtures ship inside the
// compiled test binary.
func LoadAll() ([]LoadedTest, error) {
	entries, err := fixtures.ReadDir("testdata")
	if err != nil {
		return nil, fmt.Errorf("conformance: reading testdata: %w", err)
	}

	var loaded []LoadedTest
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		tests, err := loadFixture(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("conformance: %s: %w", entry.Name(), err)
		}
		loaded = append(loaded, tests...)
	}
	return loaded, nil
}

func loadFixture(name string) ([]LoadedTest, error) {
	data, err := fixtures.ReadFile(path.Join("testdata", name))
	if err != nil {
		return nil, err
	}

	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}

	tests := make([]LoadedTest, 0, len(suite.Tests))
	for _, tc := range suite.Tests {
		tests = append(tests, LoadedTest{File: name, Suite: suite, Test: tc})
	}
	return tests, nil
}
