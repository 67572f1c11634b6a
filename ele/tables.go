// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"sync"
)

// memoized lookup tables. these are pure functions of (ndim, nverts) and
// shared by all elements of the same specialisation; the maps hold the
// computed tables and are guarded for concurrent first access.
var (
	tablesMu     sync.Mutex
	nodeFields   = make(map[int][][]string)
	permPatterns = make(map[int][]int)
)

// NodeFields returns the field labels carried by each node of this element:
// one "displacement" entry per node. The returned table is shared and must
// not be modified.
func (o *Displacement) NodeFields() [][]string {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if tab, ok := nodeFields[o.Shp.Nverts]; ok {
		return tab
	}
	tab := make([][]string, o.Shp.Nverts)
	for i := range tab {
		tab[i] = []string{"displacement"}
	}
	nodeFields[o.Shp.Nverts] = tab
	return tab
}

// DofPermutation returns the permutation mapping the external ordering of
// degrees of freedom onto the internal node-major one. Displacement elements
// use the identity pattern. The returned table is shared and must not be
// modified.
func (o *Displacement) DofPermutation() []int {
	tablesMu.Lock()
	defer tablesMu.Unlock()
	if tab, ok := permPatterns[o.Nu]; ok {
		return tab
	}
	tab := make([]int, o.Nu)
	for i := range tab {
		tab[i] = i
	}
	permPatterns[o.Nu] = tab
	return tab
}
