// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// registry is an insertion-ordered table: values are kept in a slice in
// the order they were added, and a map from key to slice index provides
// lookup. The slice index is the id of the value and never changes.
type registry[K comparable, V any] struct {
	order []V
	index map[K]int
}

// lookup returns the id of the value with the given key.
func (r *registry[K, V]) lookup(key K) (int, bool) {
	id, ok := r.index[key]
	return id, ok
}

// add appends the value under the given key and returns its id.
// The key must not already be present.
func (r *registry[K, V]) add(key K, val V) int {
	if r.index == nil {
		r.index = make(map[K]int)
	}
	id := len(r.order)
	r.index[key] = id
	r.order = append(r.order, val)
	return id
}

// at returns a pointer to the value with the given id. The pointer is
// only valid until the next add.
func (r *registry[K, V]) at(id int) *V {
	return &r.order[id]
}

func (r *registry[K, V]) len() int {
	return len(r.order)
}
