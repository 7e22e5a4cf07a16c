// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cfn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode"

	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Format is a template serialization format.
type Format string

const (
	// FormatJSON is the format the CDK synthesizes.
	FormatJSON Format = "json"
	// FormatYAML is the format most hand-written templates use.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name. The empty string means
// "keep the input format" and is returned as is.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown template format %q: accepts %q and %q", s, FormatJSON, FormatYAML)
}

// DetectFormat guesses the format of a serialized template from its first
// non-space character.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// Encode serializes the template. An empty format uses the input format.
func (t *Template) Encode(format Format) ([]byte, error) {
	if format == "" {
		format = t.format
	}
	switch format {
	case FormatJSON:
		return t.encodeJSON(" ")
	case FormatYAML:
		c := yaml.NewRNode(blockStyle(t.root.YNode()))
		s, err := c.String()
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	return nil, fmt.Errorf("unknown template format %q", format)
}

// JSON returns the compact JSON form of the template.
func (t *Template) JSON() ([]byte, error) {
	return t.encodeJSON("")
}

// encodeJSON writes the template with keys in document order. indent is
// applied per nesting level; an empty indent gives compact output with no
// trailing newline.
func (t *Template) encodeJSON(indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, t.root.YNode()); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, n.Content[0])
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return err
		}
		return writeJSONValue(buf, v)
	}
	return fmt.Errorf("unsupported node kind %d at line %d", n.Kind, n.Line)
}

func writeJSONValue(buf *bytes.Buffer, v interface{}) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return nil
}

// blockStyle returns a deep copy of n with flow styles cleared, so templates
// parsed from JSON are written as idiomatic block YAML.
func blockStyle(n *yaml.Node) *yaml.Node {
	c := *n
	switch {
	case c.Kind == yaml.MappingNode || c.Kind == yaml.SequenceNode:
		c.Style &^= yaml.FlowStyle
	case c.Kind == yaml.ScalarNode && c.Tag == yaml.NodeTagString:
		// The encoder re-quotes strings that would otherwise resolve to
		// another type.
		c.Style &^= yaml.DoubleQuotedStyle
	}
	c.Content = make([]*yaml.Node, len(n.Content))
	for i, child := range n.Content {
		c.Content[i] = blockStyle(child)
	}
	return &c
}
