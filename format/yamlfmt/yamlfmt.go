// Package yamlfmt binds mapvec to YAML mappings using gopkg.in/yaml.v3 nodes.
package yamlfmt

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	mapvec "github.com/tarantool/go-mapvec"
)

const (
	formatName = "yaml"

	nullTag = "!!null"
	mapTag  = "!!map"
)

// ErrNoNode is returned when a sink is read before a map was written to it.
var ErrNoNode = errors.New("no mapping node was written")

var (
	_ mapvec.MapSink[string, any]      = (*Sink[string, any])(nil)
	_ mapvec.MapSource[string, any]    = Source[string, any]{}
	_ mapvec.OptionSource[string, any] = Source[string, any]{}
)

// Sink builds a YAML mapping node.
type Sink[K, V any] struct {
	node *yaml.Node
}

// NewSink creates an empty sink.
func NewSink[K, V any]() *Sink[K, V] {
	return &Sink[K, V]{node: nil}
}

// BeginMap starts a new mapping node.
func (s *Sink[K, V]) BeginMap(n int) error {
	s.node = &yaml.Node{ //nolint:exhaustruct
		Kind:    yaml.MappingNode,
		Tag:     mapTag,
		Content: make([]*yaml.Node, 0, 2*max(n, 0)),
	}

	return nil
}

// WriteEntry appends the key node and the value node.
func (s *Sink[K, V]) WriteEntry(key K, value V) error {
	if s.node == nil {
		return NewEncodingError("", ErrNoNode)
	}

	index := len(s.node.Content) / 2

	keyNode := new(yaml.Node)

	err := keyNode.Encode(key)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("key of entry %d", index), err)
	}

	valueNode := new(yaml.Node)

	err = valueNode.Encode(value)
	if err != nil {
		return NewEncodingError(fmt.Sprintf("value of entry %d", index), err)
	}

	s.node.Content = append(s.node.Content, keyNode, valueNode)

	return nil
}

// EndMap does nothing: the node is complete once all entries are appended.
func (s *Sink[K, V]) EndMap() error {
	return nil
}

// Node returns the mapping node built by the sink.
func (s *Sink[K, V]) Node() (*yaml.Node, error) {
	if s.node == nil {
		return nil, NewEncodingError("", ErrNoNode)
	}

	return s.node, nil
}

// Source reads a YAML mapping node.
type Source[K, V any] struct {
	node *yaml.Node
}

// NewSource creates a source reading node. Document and alias nodes are
// followed to the value they refer to.
func NewSource[K, V any](node *yaml.Node) Source[K, V] {
	return Source[K, V]{node: node}
}

// DecodeMap visits null (or an empty document) as unit and a mapping as a map.
func (s Source[K, V]) DecodeMap(visitor mapvec.MapVisitor[K, V]) error {
	node := resolve(s.node)

	switch {
	case isNull(node):
		return visitor.VisitUnit()
	case node.Kind == yaml.MappingNode:
		return visitor.VisitMap(&entryReader[K, V]{content: node.Content, index: 0})
	default:
		return mapvec.NewInvalidTypeError(describeNode(node), visitor)
	}
}

// DecodeOption visits null as absent; anything else is handed over as present.
func (s Source[K, V]) DecodeOption(visitor mapvec.OptionVisitor[K, V]) error {
	if isNull(resolve(s.node)) {
		return visitor.VisitNone()
	}

	return visitor.VisitSome(s)
}

type entryReader[K, V any] struct {
	content []*yaml.Node
	index   int
}

func (r *entryReader[K, V]) SizeHint() (int, bool) {
	return (len(r.content) - 2*r.index) / 2, true
}

func (r *entryReader[K, V]) Next() (K, V, bool, error) {
	var (
		key   K
		value V
	)

	if 2*r.index+1 >= len(r.content) {
		return key, value, false, nil
	}

	keyNode := r.content[2*r.index]
	valueNode := r.content[2*r.index+1]

	err := keyNode.Decode(&key)
	if err != nil {
		return key, value, false, NewDecodingError(
			fmt.Sprintf("key of entry %d at line %d", r.index, keyNode.Line), err)
	}

	err = valueNode.Decode(&value)
	if err != nil {
		return key, value, false, NewDecodingError(
			fmt.Sprintf("value of entry %d at line %d", r.index, valueNode.Line), err)
	}

	r.index++

	return key, value, true, nil
}

// resolve unwraps documents and aliases.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) == 1:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			return node
		}
	}

	return nil
}

func isNull(node *yaml.Node) bool {
	if node == nil || node.Kind == 0 {
		return true
	}

	if node.Kind == yaml.DocumentNode {
		return len(node.Content) == 0
	}

	return node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag
}

func describeNode(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %s", node.ShortTag())
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return fmt.Sprintf("node kind %d", node.Kind)
	}
}

// NewEncodingError returns a YAML encoding error, or nil if err is nil.
func NewEncodingError(text string, err error) error {
	return mapvec.NewEncodingError(formatName, text, err)
}

// NewDecodingError returns a YAML decoding error, or nil if err is nil.
func NewDecodingError(text string, err error) error {
	return mapvec.NewDecodingError(formatName, text, err)
}
