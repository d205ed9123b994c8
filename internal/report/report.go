// Package report summarizes a decoded NDJSON stream: how many records it
// holds and which top-level value kinds appear, in first-seen order.
package report

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/ndjson/internal/models"
)

// KindCount is one kind's tally within a stream.
type KindCount struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// Summary describes a decoded stream.
type Summary struct {
	Lines int         `yaml:"lines"`
	Kinds []KindCount `yaml:"kinds"`
}

// Build walks the decoded values and tallies top-level kinds. Kinds keep the
// order in which they first appear in the stream.
func Build(values []models.Value) Summary {
	summary := Summary{Lines: len(values)}
	index := make(map[string]int)
	for _, v := range values {
		kind := models.Kind(v)
		i, seen := index[kind]
		if !seen {
			index[kind] = len(summary.Kinds)
			summary.Kinds = append(summary.Kinds, KindCount{Kind: kind, Count: 1})
			continue
		}
		summary.Kinds[i].Count++
	}
	return summary
}

// Text renders the summary for terminal output.
func (s Summary) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Lines: %d\n", s.Lines)
	for _, kc := range s.Kinds {
		fmt.Fprintf(&sb, "%s: %d\n", strcase.ToCamel(kc.Kind), kc.Count)
	}
	return sb.String()
}

// YAML renders the summary as a machine-readable document.
func (s Summary) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to render summary: %w", err)
	}
	return string(out), nil
}
