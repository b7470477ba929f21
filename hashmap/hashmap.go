package hashmap

import (
	tlb "github.com/akostylev0/toner"
	"github.com/akostylev0/toner/cell"
)

// Node is a HashmapNode: either a leaf carrying a T or a fork of two
// nested subtrees (spec §4.5).
type Node[T any] struct {
	IsFork bool
	Leaf   T
	Fork   [2]*Hashmap[T]
}

// Hashmap is one level of the trie: a compressed bit-string label
// followed by a node (spec §4.5).
type Hashmap[T any] struct {
	Prefix []bool
	Node   Node[T]
}

// HashmapE is a Hashmap with an explicit empty alternative (spec §4.5).
type HashmapE[T any] struct {
	Root *Hashmap[T]
}

// StoreHashmapE encodes m against a key width of n bits, coding leaf
// values with A.
func StoreHashmapE[T any, A tlb.Adapter[T]](b *cell.Builder, m HashmapE[T], n int) error {
	if m.Root == nil {
		return b.StoreBit(false)
	}
	if err := b.StoreBit(true); err != nil {
		return err
	}
	return storeHashmapRef[T, A](b, m.Root, n)
}

// ParseHashmapE decodes a HashmapE with key width n, coding leaf values
// with A.
func ParseHashmapE[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (HashmapE[T], error) {
	has, err := p.PopBit()
	if err != nil {
		return HashmapE[T]{}, err
	}
	if !has {
		return HashmapE[T]{}, nil
	}
	root, err := parseHashmapRef[T, A](p, n)
	if err != nil {
		return HashmapE[T]{}, err
	}
	return HashmapE[T]{Root: root}, nil
}

// StoreHashmap encodes one trie level against residual key width n.
func StoreHashmap[T any, A tlb.Adapter[T]](b *cell.Builder, hm Hashmap[T], n int) error {
	if err := StoreHmLabel(b, hm.Prefix, n); err != nil {
		return cell.WithField("label", err)
	}
	m := n - len(hm.Prefix)
	if err := storeHashmapNode[T, A](b, hm.Node, m); err != nil {
		return cell.WithField("node", err)
	}
	return nil
}

// ParseHashmap decodes one trie level against residual key width n.
func ParseHashmap[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (Hashmap[T], error) {
	prefix, err := ParseHmLabel(p, n)
	if err != nil {
		var zero Hashmap[T]
		return zero, cell.WithField("label", err)
	}
	m := n - len(prefix)
	node, err := parseHashmapNode[T, A](p, m)
	if err != nil {
		var zero Hashmap[T]
		return zero, cell.WithField("node", err)
	}
	return Hashmap[T]{Prefix: prefix, Node: node}, nil
}

func storeHashmapNode[T any, A tlb.Adapter[T]](b *cell.Builder, node Node[T], m int) error {
	var a A
	if m == 0 {
		if node.IsFork {
			return cell.NewCustomError("hashmap: fork with no residual bit budget")
		}
		return a.StoreTLB(b, node.Leaf)
	}
	if err := b.StoreBit(node.IsFork); err != nil {
		return err
	}
	if !node.IsFork {
		return a.StoreTLB(b, node.Leaf)
	}
	for i, child := range node.Fork {
		if err := storeHashmapRef[T, A](b, child, m-1); err != nil {
			return cell.WithIndex(i, err)
		}
	}
	return nil
}

func parseHashmapNode[T any, A tlb.Adapter[T]](p *cell.Parser, m int) (Node[T], error) {
	var a A
	if m == 0 {
		v, err := a.ParseTLB(p)
		if err != nil {
			var zero Node[T]
			return zero, err
		}
		return Node[T]{Leaf: v}, nil
	}
	isFork, err := p.PopBit()
	if err != nil {
		var zero Node[T]
		return zero, err
	}
	if !isFork {
		v, err := a.ParseTLB(p)
		if err != nil {
			var zero Node[T]
			return zero, err
		}
		return Node[T]{Leaf: v}, nil
	}
	var fork [2]*Hashmap[T]
	for i := range fork {
		hm, err := parseHashmapRef[T, A](p, m-1)
		if err != nil {
			var zero Node[T]
			return zero, cell.WithIndex(i, err)
		}
		fork[i] = hm
	}
	return Node[T]{IsFork: true, Fork: fork}, nil
}

func storeHashmapRef[T any, A tlb.Adapter[T]](b *cell.Builder, hm *Hashmap[T], n int) error {
	child := cell.NewBuilder()
	if err := StoreHashmap[T, A](child, *hm, n); err != nil {
		return cell.WithRefHop(err)
	}
	c, err := child.IntoCell()
	if err != nil {
		return cell.WithRefHop(err)
	}
	return b.StoreReference(c)
}

func parseHashmapRef[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (*Hashmap[T], error) {
	c, err := p.PopReference()
	if err != nil {
		return nil, err
	}
	cp := cell.NewParser(c)
	hm, err := ParseHashmap[T, A](cp, n)
	if err != nil {
		return nil, cell.WithRefHop(err)
	}
	if err := cp.EnsureEmpty(); err != nil {
		return nil, cell.WithRefHop(err)
	}
	return &hm, nil
}
