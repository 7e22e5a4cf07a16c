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
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// Build rebuilds the construct tree of the named stack from the
// aws:cdk:path metadata of its resources.
//
// Intermediate constructs are created on demand, so a resource at
// Stack/VPC/PublicSubnet1/Subnet yields the nodes VPC and PublicSubnet1 even
// though neither synthesized a resource of its own.
func Build(name string, tmpl *cfn.Template, env Environment) (*Stack, status.MultiError) {
	s := &Stack{
		name:        name,
		environment: env,
		template:    tmpl,
		byPath:      make(map[string]*Node),
	}
	s.root = newNode(s, nil, name)
	s.byPath[name] = s.root

	var errs status.MultiError
	claimed := make(map[string]*cfn.Resource)
	for _, r := range tmpl.Resources() {
		segments := s.segments(r)
		n := s.root
		for _, id := range segments {
			child := n.Child(id)
			if child == nil {
				child = newNode(s, n, id)
				s.byPath[child.path] = child
			}
			n = child
		}
		if prev, found := claimed[n.path]; found {
			errs = status.Append(errs, DuplicatePathError(n.path, prev, r))
			continue
		}
		claimed[n.path] = r
		n.resource = r
	}
	return s, errs
}

// segments returns the ids below the stack root at which r is placed.
func (s *Stack) segments(r *cfn.Resource) []string {
	path := r.CDKPath()
	if path == "" {
		klog.V(4).Infof("Resource %s in stack %s has no %s metadata", r.LogicalID(), s.name, metadata.CDKPathKey)
		return []string{r.LogicalID()}
	}
	parts := strings.Split(strings.Trim(path, metadata.PathSeparator), metadata.PathSeparator)
	if parts[0] != s.name {
		klog.V(2).Infof("Resource %s has path %q outside stack %s; rooting it at the stack", r.LogicalID(), path, s.name)
	}
	if len(parts) == 1 {
		// A bare construct id with no stack segment.
		return []string{r.LogicalID()}
	}
	var ids []string
	for _, p := range parts[1:] {
		if p != "" {
			ids = append(ids, p)
		}
	}
	if len(ids) == 0 {
		return []string{r.LogicalID()}
	}
	return ids
}
