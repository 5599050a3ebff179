// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package state

import "container/heap"

// Resolve returns the transitive dependency set of first evaluated against
// target snapshot s. The result contains every property of first plus all
// of their prerequisites, each exactly once, ordered so that every
// prerequisite precedes the properties that require it. Properties with no
// ordering constraint between them appear in declaration order.
//
// Resolve returns an error wrapping ErrDependencyCycle if the edges active
// under s form a cycle. A sealed registry never does.
func (r *Registry) Resolve(first []*Property, s *State) ([]*Property, error) {
	if !r.sealed {
		panic("state: Resolve called on unsealed registry")
	}
	if s.reg != r {
		panic("state: snapshot belongs to another registry")
	}

	const (
		visiting = 1
		done     = 2
	)
	color := make(map[int]uint8, len(first)*2)
	edges := make(map[int][]*Property, len(first)*2)
	members := make([]*Property, 0, len(first)*2)
	var path []*Property

	var visit func(p *Property) error
	visit = func(p *Property) error {
		switch color[p.index] {
		case done:
			return nil
		case visiting:
			return cycleError(path, p)
		}
		color[p.index] = visiting
		path = append(path, p)
		prereqs := p.Prerequisites(s)
		edges[p.index] = prereqs
		for _, q := range prereqs {
			if err := visit(q); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		color[p.index] = done
		members = append(members, p)
		return nil
	}

	for _, p := range first {
		r.mustOwn(p)
		if err := visit(p); err != nil {
			return nil, err
		}
	}

	// Kahn's algorithm restricted to the closure, smallest index first.
	indegree := make(map[int]int, len(members))
	dependents := make(map[int][]*Property, len(members))
	ready := make(indexHeap, 0, len(members))
	for _, p := range members {
		prereqs := edges[p.index]
		indegree[p.index] = len(prereqs)
		for _, q := range prereqs {
			dependents[q.index] = append(dependents[q.index], p)
		}
		if len(prereqs) == 0 {
			ready = append(ready, p.index)
		}
	}
	heap.Init(&ready)

	out := make([]*Property, 0, len(members))
	for ready.Len() > 0 {
		p := r.props[heap.Pop(&ready).(int)]
		out = append(out, p)
		for _, d := range dependents[p.index] {
			indegree[d.index]--
			if indegree[d.index] == 0 {
				heap.Push(&ready, d.index)
			}
		}
	}
	return out, nil
}

// indexHeap is a min-heap of property indices.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *indexHeap) Push(x any) { *h = append(*h, x.(int)) }

func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
