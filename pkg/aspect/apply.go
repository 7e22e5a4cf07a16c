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

package aspect

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// Change records a visit which changed the template.
type Change struct {
	Stack        string
	Aspect       string
	Path         string
	LogicalID    string
	ResourceType string
}

func (c Change) String() string {
	if c.LogicalID == "" {
		return fmt.Sprintf("%s: %s", c.Aspect, c.Path)
	}
	return fmt.Sprintf("%s: %s (%s %s)", c.Aspect, c.Path, c.ResourceType, c.LogicalID)
}

// Report summarizes applying aspects to one stack.
type Report struct {
	Stack   string
	Visits  int
	Changes []Change
}

// Changed reports whether any aspect changed the template.
func (r *Report) Changed() bool {
	return len(r.Changes) > 0
}

// bound is an attachment whose scope has been resolved to a node.
type bound struct {
	Attachment
	scope *construct.Node
}

// Apply walks the construct tree of stack and invokes each attached aspect on
// every node in its scope. Parents are visited before their children; on a
// single node, attachments run in priority order.
//
// Errors reported by aspects do not stop the walk. All of them are returned
// along with the changes made so far.
func Apply(stack *construct.Stack, attachments ...Attachment) (*Report, status.MultiError) {
	start := time.Now()
	report := &Report{Stack: stack.Name()}
	var errs status.MultiError

	bindings := bind(stack, attachments)
	construct.Walk(stack.Root(), func(n *construct.Node) bool {
		for _, b := range bindings {
			if !b.scope.IsAncestorOf(n) {
				continue
			}
			name := b.Aspect.Name()
			before := stack.Template().Generation()
			report.Visits++
			Metrics.Visits.WithLabelValues(name).Inc()
			if err := b.Aspect.Visit(n); err != nil {
				klog.V(1).Infof("Aspect %s failed on %s: %v", name, n.Path(), err)
				Metrics.Errors.WithLabelValues(name, err.Code()).Inc()
				errs = status.Append(errs, err)
			}
			if stack.Template().Generation() == before {
				continue
			}
			c := newChange(stack.Name(), name, n)
			klog.V(2).Infof("Aspect changed %s", c)
			Metrics.Changes.WithLabelValues(name).Inc()
			report.Changes = append(report.Changes, c)
		}
		return true
	})

	result := "success"
	if errs != nil {
		result = "error"
	}
	Metrics.ApplyDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
	klog.V(1).Infof("Applied %d aspect(s) to stack %s: %d visit(s), %d change(s)",
		len(bindings), stack.Name(), report.Visits, len(report.Changes))
	return report, errs
}

// bind resolves attachment scopes and sorts them by priority. Attachments
// whose scope is not in the stack are dropped.
func bind(stack *construct.Stack, attachments []Attachment) []bound {
	var result []bound
	for _, a := range attachments {
		if a.Aspect == nil {
			continue
		}
		path := ScopePath(stack.Name(), a.Scope)
		n := stack.Node(path)
		if n == nil {
			klog.V(1).Infof("Skipping aspect %s for stack %s: scope %q not found", a.Aspect.Name(), stack.Name(), path)
			continue
		}
		result = append(result, bound{Attachment: a, scope: n})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].priority() < result[j].priority()
	})
	return result
}

// ScopePath returns the full construct path of scope within the named stack.
// Scopes may be given with or without the leading stack name.
func ScopePath(stackName, scope string) string {
	scope = strings.Trim(scope, metadata.PathSeparator)
	switch {
	case scope == "", scope == stackName:
		return stackName
	case strings.HasPrefix(scope, stackName+metadata.PathSeparator):
		return scope
	}
	return stackName + metadata.PathSeparator + scope
}

func newChange(stackName, aspectName string, n *construct.Node) Change {
	c := Change{Stack: stackName, Aspect: aspectName, Path: n.Path()}
	var r status.Resource
	switch {
	case n.Resource() != nil:
		r = n
	case n.DefaultChild() != nil && n.DefaultChild().Resource() != nil:
		r = n.DefaultChild()
	default:
		return c
	}
	c.LogicalID = r.LogicalID()
	c.ResourceType = r.ResourceType()
	return c
}
