package conformance

import "testing"

func TestConformance(t *testing.T) {
	tests, err := LoadAll()
	if err != nil {
		t.Fatalf("failed to load fixtures: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("no fixtures loaded")
	}

	byFile := make(map[string][]LoadedTest)
	for _, lt := range tests {
		byFile[lt.File] = append(byFile[lt.File], lt)
	}

	for file, fileTests := range byFile {
		t.Run(file, func(t *testing.T) {
			for _, lt := range fileTests {
				lt := lt
				t.Run(lt.Test.Name, func(t *testing.T) {
					if err := Run(lt.Test); err != nil {
						t.Errorf("%s: %v", lt.Suite.Name, err)
					}
				})
			}
		})
	}
}
