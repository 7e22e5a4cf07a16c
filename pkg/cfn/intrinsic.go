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
	"strings"

	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Pseudo parameters resolved by CloudFormation at deploy time.
const (
	PseudoPartition = "AWS::Partition"
	PseudoRegion    = "AWS::Region"
	PseudoAccountID = "AWS::AccountId"
)

const (
	refKey       = "Ref"
	conditionKey = "Condition"
	fnPrefix     = "Fn::"
	fnJoin       = "Fn::Join"
	fnGetAtt     = "Fn::GetAtt"
)

// Ref returns the intrinsic {"Ref": name}.
func Ref(name string) *yaml.RNode {
	return yaml.NewRNode(mapping(refKey, stringNode(name)))
}

// Join returns the intrinsic {"Fn::Join": [delimiter, [parts...]]}. Parts are
// copied, so the result may replace any of them in the tree.
func Join(delimiter string, parts ...*yaml.RNode) *yaml.RNode {
	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: yaml.NodeTagSeq}
	for _, p := range parts {
		list.Content = append(list.Content, p.Copy().YNode())
	}
	args := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     yaml.NodeTagSeq,
		Content: []*yaml.Node{stringNode(delimiter), list},
	}
	return yaml.NewRNode(mapping(fnJoin, args))
}

// Concat joins parts into a single string value. Adjacent literal strings are
// merged and nested empty-delimiter joins are flattened, so a concatenation
// of literals stays a literal and only values that depend on intrinsics
// become an Fn::Join.
func Concat(parts ...*yaml.RNode) *yaml.RNode {
	var flat []*yaml.Node
	for _, p := range parts {
		flat = append(flat, joinOperands(p.YNode())...)
	}

	var merged []*yaml.Node
	for _, n := range flat {
		if n.Kind == yaml.ScalarNode && len(merged) > 0 && merged[len(merged)-1].Kind == yaml.ScalarNode {
			last := merged[len(merged)-1]
			merged[len(merged)-1] = stringNode(last.Value + n.Value)
			continue
		}
		if n.Kind == yaml.ScalarNode {
			// Copy so later merges never write through to the caller's node.
			n = stringNode(n.Value)
		}
		merged = append(merged, n)
	}

	switch {
	case len(merged) == 0:
		return String("")
	case len(merged) == 1 && merged[0].Kind == yaml.ScalarNode:
		return yaml.NewRNode(merged[0])
	}
	rns := make([]*yaml.RNode, len(merged))
	for i, n := range merged {
		rns[i] = yaml.NewRNode(n)
	}
	return Join("", rns...)
}

// joinOperands returns the operands of n if it is an Fn::Join with an empty
// delimiter, or n itself otherwise.
func joinOperands(n *yaml.Node) []*yaml.Node {
	args, ok := intrinsicArgs(n, fnJoin)
	if !ok || args.Kind != yaml.SequenceNode || len(args.Content) != 2 {
		return []*yaml.Node{n}
	}
	delim, list := args.Content[0], args.Content[1]
	if delim.Kind != yaml.ScalarNode || delim.Value != "" || list.Kind != yaml.SequenceNode {
		return []*yaml.Node{n}
	}
	var out []*yaml.Node
	for _, c := range list.Content {
		out = append(out, joinOperands(c)...)
	}
	return out
}

// HasSuffix reports whether the string value n ends with suffix. Both are
// compared as concatenations: literal parts by text, intrinsic parts by
// equality.
func HasSuffix(n, suffix *yaml.RNode) bool {
	parts := Concat(n).YNode()
	tail := Concat(suffix).YNode()
	ps, ts := joinOperands(parts), joinOperands(tail)
	if len(ts) > len(ps) {
		return false
	}
	offset := len(ps) - len(ts)
	for i, t := range ts {
		p := ps[offset+i]
		switch {
		case t.Kind == yaml.ScalarNode && p.Kind == yaml.ScalarNode:
			if i == 0 && !strings.HasSuffix(p.Value, t.Value) {
				return false
			}
			if i > 0 && p.Value != t.Value {
				return false
			}
		case !Equal(yaml.NewRNode(p), yaml.NewRNode(t)):
			return false
		}
	}
	return true
}

// IsIntrinsic reports whether n is a single-key mapping naming an intrinsic
// function, a Ref or a Condition reference.
func IsIntrinsic(n *yaml.RNode) bool {
	if n.IsNil() {
		return false
	}
	y := n.YNode()
	if y.Kind != yaml.MappingNode || len(y.Content) != 2 {
		return false
	}
	key := y.Content[0].Value
	return key == refKey || key == conditionKey || strings.HasPrefix(key, fnPrefix)
}

func intrinsicArgs(n *yaml.Node, name string) (*yaml.Node, bool) {
	if n == nil || n.Kind != yaml.MappingNode || len(n.Content) != 2 || n.Content[0].Value != name {
		return nil, false
	}
	return n.Content[1], true
}

// ExpandShortForm rewrites YAML short-form intrinsic tags in place into their
// long form, e.g. `!Ref Bucket` becomes `{Ref: Bucket}` and
// `!GetAtt Role.Arn` becomes `{Fn::GetAtt: [Role, Arn]}`. The long form is the
// only form JSON can carry.
func ExpandShortForm(n *yaml.Node) {
	if n == nil {
		return
	}
	for _, c := range n.Content {
		ExpandShortForm(c)
	}
	if !isShortFormTag(n.Tag) {
		return
	}

	name := strings.TrimPrefix(n.Tag, "!")
	inner := *n
	inner.Tag = defaultTag(inner.Kind)
	inner.Style = 0

	var key string
	switch name {
	case refKey, conditionKey:
		key = name
	default:
		key = fnPrefix + name
	}
	value := &inner
	if key == fnGetAtt && inner.Kind == yaml.ScalarNode {
		value = getAttArgs(inner.Value)
	}

	*n = yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     yaml.NodeTagMap,
		Content: []*yaml.Node{stringNode(key), value},
		Line:    n.Line,
		Column:  n.Column,
	}
}

func isShortFormTag(tag string) bool {
	return strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!") && len(tag) > 1
}

// getAttArgs splits "Resource.Attr.Sub" into ["Resource", "Attr.Sub"].
func getAttArgs(value string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: yaml.NodeTagSeq}
	resource, attr, found := strings.Cut(value, ".")
	seq.Content = append(seq.Content, stringNode(resource))
	if found {
		seq.Content = append(seq.Content, stringNode(attr))
	}
	return seq
}

func defaultTag(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return yaml.NodeTagMap
	case yaml.SequenceNode:
		return yaml.NodeTagSeq
	default:
		return yaml.NodeTagString
	}
}
