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
	"reflect"
	"strconv"

	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// String returns a string scalar.
func String(s string) *yaml.RNode {
	return yaml.NewRNode(stringNode(s))
}

// Bool returns a boolean scalar.
func Bool(b bool) *yaml.RNode {
	return yaml.NewRNode(&yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   yaml.NodeTagBool,
		Value: strconv.FormatBool(b),
	})
}

// FromValue converts a plain Go value (as decoded from JSON or YAML) into a
// node. Maps are emitted with sorted keys.
func FromValue(v interface{}) (*yaml.RNode, error) {
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return yaml.NewRNode(n), nil
}

// ToValue decodes n into plain Go values.
func ToValue(n *yaml.RNode) (interface{}, error) {
	if n.IsNil() {
		return nil, nil
	}
	var v interface{}
	if err := n.YNode().Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Literal returns the value of a scalar node. ok is false for nil, mapping
// and sequence nodes, which includes every intrinsic function.
func Literal(n *yaml.RNode) (string, bool) {
	if n.IsNil() || n.YNode().Kind != yaml.ScalarNode {
		return "", false
	}
	return n.YNode().Value, true
}

// IsFalse reports whether n is the literal boolean false. CloudFormation
// accepts the string "false" for boolean properties, so that counts too.
func IsFalse(n *yaml.RNode) bool {
	v, ok := Literal(n)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && !b
}

// Equal reports whether two nodes hold the same data, ignoring style,
// comments and key order.
func Equal(a, b *yaml.RNode) bool {
	av, err := ToValue(a)
	if err != nil {
		return false
	}
	bv, err := ToValue(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: yaml.NodeTagString, Value: s}
}

func mapping(key string, value *yaml.Node) *yaml.Node {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     yaml.NodeTagMap,
		Content: []*yaml.Node{stringNode(key), value},
	}
}
