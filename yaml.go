package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadYAMLItems parses a YAML definition file into flattened items, keeping
// the order of the file. Nested mappings become dotted keys and sequence
// elements are keyed by index.
func loadYAMLItems(data []byte) (*items, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	result := newItems()
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return result, nil
	}
	root := doc.Content[0]
	switch {
	case root.Kind == yaml.MappingNode:
		flattenNode("", root, result)
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		// An empty document with only comments.
	default:
		return nil, fmt.Errorf("line %d: top level must be a mapping", root.Line)
	}
	return result, nil
}

// flattenNode recursively flattens a yaml.Node tree into dotted keys.
func flattenNode(prefix string, node *yaml.Node, result *items) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i < len(node.Content)-1; i += 2 {
			flattenNode(joinKey(prefix, node.Content[i].Value), node.Content[i+1], result)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			flattenNode(joinKey(prefix, strconv.Itoa(i)), child, result)
		}
	default:
		if node.Tag == "!!null" {
			result.set(prefix, "")
			return
		}
		result.set(prefix, node.Value)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// encodeYAML writes the items in the given key order as a single-level
// mapping. Every scalar is tagged as a string so values like "yes" or
// "123" are quoted and read back unchanged.
func encodeYAML(it *items, keys []string) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		mapping.Content = append(mapping.Content, stringNode(k), stringNode(it.get(k)))
	}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// removeItemFromNode removes an item from a mapping node. The item may be
// stored under its full dotted name or nested one level per segment; empty
// parents left behind are pruned. Returns true if the item was found.
func removeItemFromNode(node *yaml.Node, item string) bool {
	if node.Kind != yaml.MappingNode || item == "" {
		return false
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		if node.Content[i].Value == item {
			node.Content = append(node.Content[:i], node.Content[i+2:]...)
			return true
		}
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		rest, ok := strings.CutPrefix(item, keyNode.Value+".")
		if !ok || valNode.Kind != yaml.MappingNode {
			continue
		}
		if removeItemFromNode(valNode, rest) {
			if len(valNode.Content) == 0 {
				node.Content = append(node.Content[:i], node.Content[i+2:]...)
			}
			return true
		}
	}
	return false
}
