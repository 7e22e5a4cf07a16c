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

// Package aspect implements visitors which walk the construct tree of a
// stack and mutate or annotate the resources they match.
package aspect

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// Aspect is invoked once for every node in the scope it is attached to.
type Aspect interface {
	// Name is the registry name of the aspect, e.g. "add-condition".
	Name() string
	// Visit inspects n and edits the resources of n's stack when n matches.
	// Nodes the aspect is not interested in are ignored and return nil.
	Visit(n *construct.Node) status.Error
}

// Priority orders aspects applied to the same node. Lower runs first.
type Priority int

const (
	// Mutating is for aspects which change resource properties.
	Mutating Priority = 200
	// Default is the priority of attachments which do not set one.
	Default Priority = 500
	// Readonly is for aspects which only inspect or annotate resources.
	Readonly Priority = 1000
)

// Attachment is an aspect bound to a subtree of the construct tree.
type Attachment struct {
	// Aspect is the visitor to run.
	Aspect Aspect

	// Scope is the construct path of the subtree the aspect applies to.
	// Paths may omit the leading stack name. Empty means the whole stack.
	Scope string

	// Priority orders this attachment against others visiting the same node.
	// Zero means Default.
	Priority Priority
}

func (a Attachment) priority() Priority {
	if a.Priority == 0 {
		return Default
	}
	return a.Priority
}

// VisitorFunc adapts a function to the Aspect interface.
type VisitorFunc struct {
	name  string
	visit func(n *construct.Node) status.Error
}

// Func returns an Aspect named name which calls visit for each node.
func Func(name string, visit func(n *construct.Node) status.Error) Aspect {
	return &VisitorFunc{name: name, visit: visit}
}

// Name implements Aspect.
func (f *VisitorFunc) Name() string {
	return f.name
}

// Visit implements Aspect.
func (f *VisitorFunc) Visit(n *construct.Node) status.Error {
	return f.visit(n)
}
