// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
)

func build(keys ...int) *avl.Map[int, string] {
	tree := avl.New[int, string]()
	for _, key := range keys {
		tree.Insert(key, fmt.Sprintf("v%d", key))
	}
	return tree
}

func drawing(tree *avl.Map[int, string]) string {
	var b strings.Builder
	tree.Print(&b, true)
	return b.String()
}

func TestThreeNodeRotations(t *testing.T) {
	orders := map[string][]int{
		"single left":  {1, 2, 3},
		"single right": {3, 2, 1},
		"left-right":   {3, 1, 2},
		"right-left":   {1, 3, 2},
	}

	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			tree := build(order...)
			require.NoError(t, tree.Check())

			root := tree.Root()
			require.NotNil(t, root, "no root")
			assert.Equal(t, 2, root.Key(), "wrong root")
			require.NotNil(t, root.Left(), "no left child")
			require.NotNil(t, root.Right(), "no right child")
			assert.Equal(t, 1, root.Left().Key(), "wrong left child")
			assert.Equal(t, 3, root.Right().Key(), "wrong right child")
			assert.Nil(t, root.Parent(), "root has a parent")

			for _, p := range []*avl.Node[int, string]{root, root.Left(), root.Right()} {
				assert.Equal(t, 0, p.Balance(), "key: %d cached balance", p.Key())
				assert.Equal(t, 0, p.BalanceFactor(), "key: %d balance", p.Key())
			}
			assert.Equal(t, 1, root.Height(), "root height")
			assert.Equal(t, 3, tree.Size(), "wrong size")
		})
	}
}

func TestEraseTwoChildren(t *testing.T) {
	tree := build(1, 2, 3, 4, 5, 6, 7)
	require.NoError(t, tree.Check())

	root := tree.Root()
	require.Equal(t, 4, root.Key(), "ascending insert should give a perfect tree")

	it := tree.Find(4)
	require.True(t, it.Node() == root, "find did not return the root")
	tree.Erase(it)

	require.NoError(t, tree.Check())
	assert.Equal(t, 6, tree.Size(), "wrong size")
	assert.True(t, root == tree.Root(), "root node was replaced rather than overwritten")
	assert.Equal(t, 5, root.Key(), "successor key not copied")
	assert.Equal(t, "v5", root.Value(), "successor value not copied")
	assert.Equal(t, 6, root.Right().Key(), "wrong right child")
	assert.Nil(t, root.Right().Left(), "successor node not removed")
	assert.Equal(t, 7, root.Right().Right().Key(), "wrong right grandchild")
	assert.True(t, tree.Find(4).IsEnd(), "erased key still present")
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, slices.Collect(tree.Keys()), "wrong keys")
}

func TestClearByErasingFirst(t *testing.T) {
	tree := avl.New[int, string]()
	for i := 1; i <= 100; i += 1 {
		tree.Insert(i, fmt.Sprintf("v%d", i))
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 100, tree.Size(), "wrong size")

	for !tree.IsEmpty() {
		n := tree.Size()
		tree.Erase(tree.Begin())
		require.Equal(t, n-1, tree.Size(), "erase changed size by more than one")
		require.NoError(t, tree.Check())
	}

	assertEmpty(t, tree)

	// usable again afterwards
	tree.Insert(42, "answer")
	require.NoError(t, tree.Check())
	assert.Equal(t, 1, tree.Size(), "wrong size")
}

func assertEmpty(t *testing.T, tree *avl.Map[int, string]) {
	t.Helper()
	assert.Equal(t, 0, tree.Size(), "size not zero")
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Nil(t, tree.Root(), "root remains")
	assert.Equal(t, -1, tree.Height(), "empty height")
	assert.True(t, tree.Begin().Equal(tree.End()), "begin is not end")
	assert.True(t, tree.CBegin().Equal(tree.CEnd()), "const begin is not end")
	assert.True(t, tree.Find(1).IsEnd(), "find on empty map")
	assert.Equal(t, "", tree.String(), "dump of empty map")
	assert.NoError(t, tree.Check())
}

func TestClear(t *testing.T) {
	tree := build(5, 3, 8, 1, 4, 7, 9)
	tree.Clear()
	assertEmpty(t, tree)

	tree.Clear()
	assertEmpty(t, tree)

	var zero avl.Map[int, string]
	zero.Clear()
	assertEmpty(t, &zero)
}

func TestInsertOverwrite(t *testing.T) {
	tree := build(10, 20, 30, 40, 50)
	before := drawing(tree)
	node := tree.Find(30).Node()

	added := tree.Insert(30, "replaced")
	assert.False(t, added, "overwrite reported as added")
	assert.Equal(t, 5, tree.Size(), "size changed")
	assert.True(t, node == tree.Find(30).Node(), "node replaced")
	assert.Equal(t, "replaced", node.Value(), "value not replaced")

	tree.Insert(30, "v30")
	assert.Equal(t, before, drawing(tree), "tree shape changed")
	require.NoError(t, tree.Check())
}

func TestIndex(t *testing.T) {
	tree := build(1, 2, 3)

	p := tree.Index(2)
	require.NotNil(t, p)
	assert.Equal(t, "v2", *p, "existing value")
	*p = "two"
	assert.Equal(t, "two", tree.Find(2).Value(), "value not updated through pointer")
	assert.Equal(t, 3, tree.Size(), "size changed on hit")

	p = tree.Index(9)
	assert.Equal(t, "", *p, "created value is not the zero value")
	assert.Equal(t, 4, tree.Size(), "absent key not created")
	assert.False(t, tree.Find(9).IsEnd(), "absent key not created")
	require.NoError(t, tree.Check())

	words := avl.New[string, int]()
	for _, w := range strings.Fields("the cat and the hat and the bat") {
		*words.Index(w) += 1
	}
	require.NoError(t, words.Check())
	counts := map[string]int{}
	for k, v := range words.All() {
		counts[k] = v
	}
	assert.Equal(t, map[string]int{"and": 2, "bat": 1, "cat": 1, "hat": 1, "the": 3}, counts, "word counts")
}

func TestGet(t *testing.T) {
	tree := build(1, 2)
	v, ok := tree.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	v, ok = tree.Get(3)
	assert.False(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, 2, tree.Size(), "get must not create")
}

func TestEraseEnd(t *testing.T) {
	tree := build(1, 2, 3)
	tree.Erase(tree.End())
	tree.Erase(tree.Find(99))
	assert.Equal(t, 3, tree.Size(), "erase of end changed the map")
	require.NoError(t, tree.Check())

	empty := avl.New[int, string]()
	empty.Erase(empty.End())
	assertEmpty(t, empty)
}

func TestEraseLeafAndOneChild(t *testing.T) {
	tree := build(2, 1, 3, 4)

	// 3 has a single right child
	tree.Erase(tree.Find(3))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{1, 2, 4}, slices.Collect(tree.Keys()))
	assert.Equal(t, 2, tree.Find(4).Node().Parent().Key(), "child not reparented")

	// leaf
	tree.Erase(tree.Find(1))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{2, 4}, slices.Collect(tree.Keys()))

	// root with one child
	tree.Erase(tree.Find(2))
	require.NoError(t, tree.Check())
	assert.Equal(t, 4, tree.Root().Key(), "child not spliced into root")
	assert.Nil(t, tree.Root().Parent(), "new root has a parent")

	// last node
	tree.Erase(tree.Begin())
	assertEmpty(t, tree)
}

func TestDeleteRotatesAtSeveralLevels(t *testing.T) {
	// a minimal AVL tree of height 4 (Fibonacci shape), removing
	// the deepest node on its shallow side unbalances two levels
	tree := build(8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1)
	require.NoError(t, tree.Check())
	require.Equal(t, 4, tree.Height())
	require.Equal(t, 8, tree.Root().Key())

	tree.Delete(12)
	require.NoError(t, tree.Check())
	assert.Equal(t, 5, tree.Root().Key(), "second rotation did not reach the root")
	assert.Equal(t, 3, tree.Height())

	for _, key := range []int{9, 10, 11, 6, 7} {
		tree.Delete(key)
		require.NoError(t, tree.Check(), "after deleting: %d", key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 8}, slices.Collect(tree.Keys()))
}

func TestAdversarialOrderHeight(t *testing.T) {
	tree := avl.New[int, int]()
	const n = 1 << 12
	for i := 0; i < n; i += 1 {
		tree.Insert(i, i)
	}
	require.NoError(t, tree.Check())
	// AVL height bound: < 1.45·log2(n+2)
	assert.LessOrEqual(t, tree.Height(), 17, "tree too tall")

	for i := n - 1; i >= 0; i -= 2 {
		tree.Delete(i)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, n/2, tree.Size())
}

func TestIterators(t *testing.T) {
	tree := build(4, 2, 6, 1, 3, 5, 7)

	it := tree.Begin()
	assert.Equal(t, 1, it.Key(), "begin")

	old := it.PostIncrement()
	assert.Equal(t, 1, old.Key(), "post increment returns previous position")
	assert.Equal(t, 2, it.Key(), "post increment moves")
	assert.Equal(t, 3, it.Increment().Key(), "pre increment")

	old = it.PostDecrement()
	assert.Equal(t, 3, old.Key(), "post decrement returns previous position")
	assert.Equal(t, 2, it.Key(), "post decrement moves")
	assert.Equal(t, 1, it.Decrement().Key(), "pre decrement")
	assert.True(t, it.Decrement().IsEnd(), "decrement before first")

	last := tree.End()
	assert.Equal(t, 7, last.Decrement().Key(), "decrement from end")
	assert.True(t, last.Increment().Equal(tree.End()), "increment past last")

	it = tree.Find(5)
	it.SetValue("five")
	assert.Equal(t, "five", tree.Find(5).Value(), "set value")
	assert.Equal(t, "five", it.Const().Value(), "const copy")

	c := tree.CFind(6)
	assert.Equal(t, "v6", c.Value())
	assert.Equal(t, 5, c.Decrement().Key())
	assert.Equal(t, 5, c.PostIncrement().Key())
	assert.Equal(t, 6, c.Key())
	assert.True(t, c.Equal(tree.Find(6).Const()), "same node")

	e := tree.CEnd()
	assert.True(t, e.PostDecrement().IsEnd(), "post decrement from end returns end")
	assert.Equal(t, 7, e.Key(), "post decrement from end moves to last")

	empty := avl.New[int, string]()
	end := empty.End()
	assert.True(t, end.Decrement().IsEnd(), "decrement end of empty map")
}

func TestEndIteratorsCompareAcrossMaps(t *testing.T) {
	a := build(1, 2)
	b := build(3)
	assert.True(t, a.End().Equal(b.End()), "end iterators of different maps")
	assert.True(t, a.CEnd().Equal(b.CEnd()), "const end iterators of different maps")
	assert.True(t, a.Find(9).Equal(b.End()), "miss compared with another map's end")
	assert.False(t, a.Begin().Equal(b.Begin()), "different nodes")
}

func TestTerminalDereferencePanics(t *testing.T) {
	tree := build(1)
	end := tree.End()

	assert.Panics(t, func() { _ = end.Key() }, "key of end")
	assert.Panics(t, func() { _ = end.Value() }, "value of end")
	assert.Panics(t, func() { end.SetValue("x") }, "set value of end")
	assert.Panics(t, func() { end.Increment() }, "increment end")
	assert.Panics(t, func() { _ = tree.CEnd().Key() }, "key of const end")
	assert.Equal(t, 1, tree.Size())
}

func TestRangeFunctions(t *testing.T) {
	tree := build(3, 1, 2, 5, 4)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(tree.Keys()))

	var down []string
	for k, v := range tree.Backward() {
		down = append(down, fmt.Sprintf("%d=%s", k, v))
	}
	assert.Equal(t, []string{"5=v5", "4=v4", "3=v3", "2=v2", "1=v1"}, down)

	var some []int
	for k := range tree.All() {
		if k > 2 {
			break
		}
		some = append(some, k)
	}
	assert.Equal(t, []int{1, 2}, some, "early stop")
}

func TestCloneIsDeep(t *testing.T) {
	original := build(1, 2, 3, 4, 5, 6, 7, 8, 9)
	shape := drawing(original)

	copied := original.Clone()
	require.NoError(t, copied.Check())
	assert.Equal(t, shape, drawing(copied), "clone has a different shape")
	assert.Equal(t, original.Size(), copied.Size())
	assert.False(t, original.Root() == copied.Root(), "nodes shared")

	copied.Insert(100, "v100")
	copied.Delete(5)
	copied.Find(1).SetValue("changed")
	require.NoError(t, copied.Check())

	assert.Equal(t, shape, drawing(original), "original changed by clone mutation")
	assert.Equal(t, 9, original.Size())
	assert.Equal(t, "v1", original.Find(1).Value())
	assert.False(t, original.Find(5).IsEnd())
	require.NoError(t, original.Check())

	empty := avl.New[int, string]().Clone()
	assertEmpty(t, empty)
}

func TestAssign(t *testing.T) {
	src := build(10, 20, 30)
	dst := build(1, 2, 3, 4)

	dst.Assign(src)
	require.NoError(t, dst.Check())
	assert.Equal(t, src.String(), dst.String())
	assert.Equal(t, 3, dst.Size())

	dst.Insert(40, "v40")
	assert.Equal(t, 3, src.Size(), "source changed")

	dst.Assign(dst)
	assert.Equal(t, 4, dst.Size(), "self assignment changed the map")
	require.NoError(t, dst.Check())

	dst.Assign(avl.New[int, string]())
	assertEmpty(t, dst)
}

func TestMove(t *testing.T) {
	src := build(1, 2, 3)
	root := src.Root()

	moved := src.Move()
	assertEmpty(t, src)
	assert.Equal(t, 3, moved.Size())
	assert.True(t, root == moved.Root(), "move copied the nodes")
	require.NoError(t, moved.Check())

	dst := build(7, 8)
	dst.MoveFrom(moved)
	assertEmpty(t, moved)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(dst.Keys()))
	assert.True(t, root == dst.Root(), "move assignment copied the nodes")

	dst.MoveFrom(dst)
	assert.Equal(t, 3, dst.Size(), "self move changed the map")
}

func TestDump(t *testing.T) {
	tree := build(2, 1, 3)
	var b strings.Builder
	require.NoError(t, tree.Dump(&b))

	expected := "1 -> v1\n2 -> v2\n3 -> v3\n"
	if diff := cmp.Diff(expected, b.String()); "" != diff {
		t.Fatalf("dump mismatch (-expected +actual):\n%s", diff)
	}
	assert.Equal(t, expected, tree.String())

	b.Reset()
	require.NoError(t, tree.Find(2).Node().Print(&b))
	assert.Equal(t, "2 -> v2\n", b.String())
}

func TestPrint(t *testing.T) {
	tree := build(1, 2, 3)
	var b strings.Builder
	depth := tree.Print(&b, false)
	assert.Equal(t, 2, depth)

	expected := "" +
		"       /------+ 3 ^2\n" +
		"|------+ 2 ^<nil>\n" +
		"       \\------+ 1 ^2\n"
	assert.Equal(t, expected, b.String())

	b.Reset()
	assert.Equal(t, 0, avl.New[int, string]().Print(&b, true))
	assert.Equal(t, "", b.String())
}
