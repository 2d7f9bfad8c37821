// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package topics loads and validates the topics file. The file is a YAML
// mapping from topic name to keyword/category settings; mapping order is
// preserved because it determines digest section order.
package topics

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

// Load reads and validates a topics file. Validation failures abort the run
// before any fetching begins.
func Load(path string) ([]types.Topic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading topics file: %w", err)
	}
	list, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing topics file %s: %w", path, err)
	}
	return list, nil
}

// Parse decodes a topics document and validates every entry. A plain
// map[string]Topic would lose document order, so the top level is decoded
// through yaml.Node.
func Parse(data []byte) ([]types.Topic, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, fmt.Errorf("topics file is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("topics file must be a mapping of topic name to settings")
	}

	var list []types.Topic
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var t types.Topic
		if err := valNode.Decode(&t); err != nil {
			return nil, fmt.Errorf("topic %q: %w", keyNode.Value, err)
		}
		t.Name = keyNode.Value

		if err := validate(t); err != nil {
			return nil, err
		}
		list = append(list, t)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("topics file defines no topics")
	}
	return list, nil
}

func validate(t types.Topic) error {
	if t.Name == "" {
		return fmt.Errorf("topic with empty name")
	}
	keywords := 0
	for _, kw := range t.Keywords {
		if kw != "" {
			keywords++
		}
	}
	if keywords == 0 {
		return fmt.Errorf("topic %q: at least one keyword is required", t.Name)
	}
	if t.MaxResults < 0 {
		return fmt.Errorf("topic %q: max_results must be positive, got %d", t.Name, t.MaxResults)
	}
	return nil
}
