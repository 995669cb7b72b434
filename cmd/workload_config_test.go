package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workloads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWorkloadSuite_Valid(t *testing.T) {
	path := writeSuiteFile(t, `
workloads:
  - name: warm-loop
    pattern: looping
    mode: friendly
    capacity: 4
    accesses: 100
  - pattern: adversarial
    mode: hostile
    capacity: 3
    accesses: 50
`)
	suite, err := LoadWorkloadSuite(path)
	require.NoError(t, err)
	require.Len(t, suite.Workloads, 2)
	assert.Equal(t, "warm-loop", suite.Workloads[0].Name)
	assert.Equal(t, "adversarial", suite.Workloads[1].Name, "name defaults to pattern")
	assert.Equal(t, 3, suite.Workloads[1].Capacity)
}

func TestLoadWorkloadSuite_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty suite", "workloads: []"},
		{"unknown pattern", `
workloads:
  - pattern: random-walk
    mode: hostile
    capacity: 4
    accesses: 10
`},
		{"unknown mode", `
workloads:
  - pattern: looping
    mode: adaptive
    capacity: 4
    accesses: 10
`},
		{"zero capacity", `
workloads:
  - pattern: looping
    mode: hostile
    capacity: 0
    accesses: 10
`},
		{"zero accesses", `
workloads:
  - pattern: looping
    mode: hostile
    capacity: 4
    accesses: 0
`},
		{"duplicate names", `
workloads:
  - pattern: looping
    mode: hostile
    capacity: 4
    accesses: 10
  - pattern: looping
    mode: friendly
    capacity: 2
    accesses: 10
`},
		{"malformed yaml", "workloads: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWorkloadSuite(writeSuiteFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadWorkloadSuite_MissingFile(t *testing.T) {
	_, err := LoadWorkloadSuite(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
