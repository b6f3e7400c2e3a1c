// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package huff

import (
	"container/heap"
	"fmt"
	"strings"
)

// A Tree is a Huffman tree built from a FrequencyTable. It is navigated,
// bit by bit, from its root to reach a symbol.
type Tree struct {
	// nodes contains every node in the tree, leaves included. Children
	// always precede their parent since the tree is built bottom up and
	// consequently the root is the last node.
	nodes []treeNode
}

// A treeNode is either a leaf, in which case left and right are both
// invalidNodeValue, or an internal node whose left and right fields are
// indexes into the tree's nodes.
type treeNode struct {
	symbol      Symbol
	weight      uint64
	left, right uint16
}

// invalidNodeValue is an invalid index which marks a leaf node.
const invalidNodeValue = 0xffff

func (n *treeNode) isLeaf() bool {
	return n.left == invalidNodeValue
}

// queueItem is an entry in the priority queue used to build the tree.
// order records when the item was pushed onto the queue and breaks ties
// between equal weights: the item pushed first is the smaller.
type queueItem struct {
	node   uint16
	weight uint64
	order  int
}

type nodeHeap []queueItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Build returns the Huffman tree for ft. Leaves are queued in the table's
// canonical order and each pair of nodes removed from the queue becomes
// the left and right child, in that order, of a new node whose weight is
// the sum of theirs. Since equal weights are resolved by the order in
// which nodes were queued, the same table always yields the same tree.
func Build(ft *FrequencyTable) *Tree {
	entries := ft.Entries()
	t := &Tree{nodes: make([]treeNode, 0, 2*len(entries)-1)}
	h := make(nodeHeap, 0, len(entries))
	order := 0
	push := func(n treeNode) {
		t.nodes = append(t.nodes, n)
		heap.Push(&h, queueItem{
			node:   uint16(len(t.nodes) - 1),
			weight: n.weight,
			order:  order,
		})
		order++
	}
	for _, e := range entries {
		push(treeNode{
			symbol: e.Symbol,
			weight: uint64(e.Count),
			left:   invalidNodeValue,
			right:  invalidNodeValue,
		})
	}
	for h.Len() > 1 {
		first := heap.Pop(&h).(queueItem)
		second := heap.Pop(&h).(queueItem)
		push(treeNode{
			weight: first.weight + second.weight,
			left:   first.node,
			right:  second.node,
		})
	}
	return t
}

func (t *Tree) root() uint16 {
	return uint16(len(t.nodes) - 1)
}

// Weight returns the weight of the root, that is, the sum of all
// counts including the end-of-stream marker.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root()].weight
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// IsEOSOnly returns true for the degenerate tree that consists of a
// single end-of-stream leaf, as is built for an empty input.
func (t *Tree) IsEOSOnly() bool {
	r := &t.nodes[t.root()]
	return r.isLeaf() && r.symbol.IsEOS()
}

// String returns a parenthesized rendering of the tree, leaves are
// written as symbol:weight.
func (t *Tree) String() string {
	var out strings.Builder
	t.format(&out, t.root())
	return out.String()
}

func (t *Tree) format(out *strings.Builder, idx uint16) {
	n := &t.nodes[idx]
	if n.isLeaf() {
		fmt.Fprintf(out, "%v:%v", n.symbol, n.weight)
		return
	}
	out.WriteByte('(')
	t.format(out, n.left)
	out.WriteByte(' ')
	t.format(out, n.right)
	out.WriteByte(')')
}
