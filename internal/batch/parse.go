package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Pavan19102006/Jagadeesh-project/client"
)

// document accepts either a bare list of postings or {postings: [...]}.
// JSON files decode the same way since JSON is valid YAML.
type document struct {
	Postings []yaml.Node `yaml:"postings"`
}

// ParseFile reads postings from a YAML or JSON file.
func ParseFile(path string) ([]client.JobPostingRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse decodes postings. Omitted maxHoursPerWeek and totalPositions take
// the form defaults.
func Parse(r io.Reader) ([]client.JobPostingRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("import file is empty")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode import file: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("import file is empty")
	}

	var nodes []yaml.Node
	switch top := root.Content[0]; top.Kind {
	case yaml.SequenceNode:
		if err := top.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("decode postings: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		if err := top.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode postings: %w", err)
		}
		nodes = doc.Postings
	default:
		return nil, fmt.Errorf("import file must hold a list of postings")
	}

	out := make([]client.JobPostingRequest, 0, len(nodes))
	for i := range nodes {
		req := client.NewJobPostingRequest()
		if err := nodes[i].Decode(&req); err != nil {
			return nil, fmt.Errorf("posting %d (line %d): %w", i, nodes[i].Line, err)
		}
		out = append(out, req)
	}
	return out, nil
}
