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

// WalkFunc is called for each node visited by Walk. Returning false skips
// the node's descendants.
type WalkFunc func(n *Node) bool

// Walk visits n and its descendants pre-order: a parent before its children
// and children in template order.
func Walk(n *Node, fn WalkFunc) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}

// Nodes returns n and all its descendants in walk order.
func Nodes(n *Node) []*Node {
	var result []*Node
	Walk(n, func(c *Node) bool {
		result = append(result, c)
		return true
	})
	return result
}
