package spec

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"constenum/utils"
)

// --- Literal YAML methods ---

// UnmarshalYAML keeps the scalar text as written, so 0x16 stays 0x16 and
// no precision is lost on 64-bit values.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected integer literal, got %s", node.Line, kindName(node.Kind))
	}

	*l = Literal(strings.TrimSpace(node.Value))

	return nil
}

// MarshalYAML emits the literal as a plain integer scalar.
func (l Literal) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(l)}, nil
}

// --- Variants YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Variants.
// Accepts:
//   - Mapping in declaration order: {V0: 0, V1: 1}
//   - Sequence of objects: [{name: V0, value: 0, doc: "..."}]
//   - Sequence of single-key maps: [{V0: 0}, {V1: 1}]
//
// Repeated names are kept so validation can report them.
func (v *Variants) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Variants, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			vd, err := pairToVariant(node.Content[i], node.Content[i+1])
			if err != nil {
				return err
			}

			out = append(out, vd)
		}

		*v = out

		return nil

	case yaml.SequenceNode:
		out := make(Variants, 0, len(node.Content))

		for _, item := range node.Content {
			vd, err := itemToVariant(item)
			if err != nil {
				return err
			}

			out = append(out, vd)
		}

		*v = out

		return nil

	default:
		return fmt.Errorf("line %d: expected mapping or sequence of variants, got %s", node.Line, kindName(node.Kind))
	}
}

func pairToVariant(key, value *yaml.Node) (VariantDef, error) {
	var vd VariantDef

	if err := key.Decode(&vd.Name); err != nil {
		return vd, fmt.Errorf("line %d: invalid variant name: %w", key.Line, err)
	}

	if err := value.Decode(&vd.Value); err != nil {
		return vd, fmt.Errorf("variant %s: %w", vd.Name, err)
	}

	return vd, nil
}

func itemToVariant(item *yaml.Node) (VariantDef, error) {
	if item.Kind != yaml.MappingNode {
		return VariantDef{}, fmt.Errorf("line %d: expected variant object, got %s", item.Line, kindName(item.Kind))
	}

	if len(item.Content) == 2 && !isVariantKey(item.Content[0].Value) {
		return pairToVariant(item.Content[0], item.Content[1])
	}

	var vd VariantDef
	if err := item.Decode(&vd); err != nil {
		return vd, fmt.Errorf("line %d: invalid variant: %w", item.Line, err)
	}

	return vd, nil
}

func isVariantKey(k string) bool {
	return k == "name" || k == "value" || k == "doc"
}

// MarshalYAML writes the compact mapping form unless a variant carries a
// doc, which needs the object form.
func (v Variants) MarshalYAML() (any, error) {
	for _, vd := range v {
		if vd.Doc != "" {
			return []VariantDef(v), nil
		}
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, vd := range v {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: vd.Name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(vd.Value)},
		)
	}

	return node, nil
}

// --- Range YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Range.
// Accepts:
//   - Two-element sequence: [0, 22]
//   - Inclusive range text: "0..=22"
//   - Mapping: {low: 0, high: 22}
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: range needs exactly two bounds, got %d", node.Line, len(node.Content))
		}

		low, high := utils.Unpack2(node.Content)
		if err := low.Decode(&r.Low); err != nil {
			return err
		}

		return high.Decode(&r.High)

	case yaml.ScalarNode:
		parsed, err := ParseRange(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*r = parsed

		return nil

	case yaml.MappingNode:
		var m struct {
			Low  *Literal `yaml:"low"`
			High *Literal `yaml:"high"`
		}

		if err := node.Decode(&m); err != nil {
			return err
		}

		if m.Low == nil || m.High == nil {
			return fmt.Errorf("line %d: range needs both low and high", node.Line)
		}

		r.Low, r.High = *m.Low, *m.High

		return nil

	default:
		return fmt.Errorf("line %d: expected range, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes the range as a flow sequence [low, high].
func (r Range) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(r.Low)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(r.High)},
		},
	}, nil
}

// ErrRangeSyntax reports range text that is not "low..=high".
var ErrRangeSyntax = errors.New(`range must look like "low..=high"`)

// ParseRange parses "low..=high". The half-open "low..high" is rejected
// rather than guessed at.
func ParseRange(s string) (Range, error) {
	low, high, ok := strings.Cut(s, "..=")
	if !ok {
		return Range{}, fmt.Errorf("%q: %w", s, ErrRangeSyntax)
	}

	low, high = strings.TrimSpace(low), strings.TrimSpace(high)
	if low == "" || high == "" {
		return Range{}, fmt.Errorf("%q: %w", s, ErrRangeSyntax)
	}

	return Range{Low: Literal(low), High: Literal(high)}, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown node"
	}
}
