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

package construct

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// Node is a construct in the tree rebuilt from a synthesized template.
//
// Nodes which synthesized a resource (L1 constructs) carry it; every other
// node is a higher-level construct whose resources live in its descendants.
type Node struct {
	id       string
	path     string
	parent   *Node
	children []*Node
	byID     map[string]*Node
	resource *cfn.Resource
	stack    *Stack
}

var _ status.Resource = &Node{}

func newNode(stack *Stack, parent *Node, id string) *Node {
	n := &Node{
		id:     id,
		parent: parent,
		byID:   make(map[string]*Node),
		stack:  stack,
	}
	if parent == nil {
		n.path = id
	} else {
		n.path = parent.path + metadata.PathSeparator + id
		parent.children = append(parent.children, n)
		parent.byID[id] = n
	}
	return n
}

// ID returns the id of the node within its parent.
func (n *Node) ID() string {
	return n.id
}

// Path returns the full slash-separated construct path, starting with the
// stack name.
func (n *Node) Path() string {
	return n.path
}

// Parent returns the parent node, or nil for the stack root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in template order.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the direct child with the given id, or nil.
func (n *Node) Child(id string) *Node {
	return n.byID[id]
}

// Resource returns the resource synthesized by this node, or nil.
func (n *Node) Resource() *cfn.Resource {
	return n.resource
}

// Stack returns the stack the node belongs to.
func (n *Node) Stack() *Stack {
	return n.stack
}

// DefaultChild returns the child named "Resource" or "Default", or nil.
func (n *Node) DefaultChild() *Node {
	for _, id := range metadata.DefaultChildIDs {
		if c := n.byID[id]; c != nil {
			return c
		}
	}
	return nil
}

// IsResourceOfType reports whether the node synthesized a resource of the
// given type.
func (n *Node) IsResourceOfType(resourceType string) bool {
	return n.resource != nil && n.resource.Type() == resourceType
}

// IsAncestorOf reports whether n is other or one of its ancestors.
func (n *Node) IsAncestorOf(other *Node) bool {
	for c := other; c != nil; c = c.parent {
		if c == n {
			return true
		}
	}
	return false
}

// ConstructPath implements status.Resource.
func (n *Node) ConstructPath() string {
	return n.path
}

// LogicalID implements status.Resource.
func (n *Node) LogicalID() string {
	if n.resource == nil {
		return ""
	}
	return n.resource.LogicalID()
}

// ResourceType implements status.Resource.
func (n *Node) ResourceType() string {
	if n.resource == nil {
		return ""
	}
	return n.resource.Type()
}
