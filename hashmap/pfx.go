package hashmap

import (
	tlb "github.com/akostylev0/toner"
	"github.com/akostylev0/toner/cell"
)

// StorePfxHashmapE encodes a prefix-coded HashmapE where a leaf may occur
// at any internal level (spec §4.5, grounded on pfx.rs).
func StorePfxHashmapE[T any, A tlb.Adapter[T]](b *cell.Builder, m HashmapE[T], n int) error {
	if m.Root == nil {
		return b.StoreBit(false)
	}
	if err := b.StoreBit(true); err != nil {
		return err
	}
	return storePfxHashmapRef[T, A](b, m.Root, n)
}

// ParsePfxHashmapE decodes a prefix-coded HashmapE.
func ParsePfxHashmapE[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (HashmapE[T], error) {
	has, err := p.PopBit()
	if err != nil {
		return HashmapE[T]{}, err
	}
	if !has {
		return HashmapE[T]{}, nil
	}
	root, err := parsePfxHashmapRef[T, A](p, n)
	if err != nil {
		return HashmapE[T]{}, err
	}
	return HashmapE[T]{Root: root}, nil
}

// StorePfxHashmap encodes one prefix-trie level against residual key
// width n.
func StorePfxHashmap[T any, A tlb.Adapter[T]](b *cell.Builder, hm Hashmap[T], n int) error {
	if err := StoreHmLabel(b, hm.Prefix, n); err != nil {
		return cell.WithField("label", err)
	}
	m := n - len(hm.Prefix)
	if err := storePfxHashmapNode[T, A](b, hm.Node, m); err != nil {
		return cell.WithField("node", err)
	}
	return nil
}

// ParsePfxHashmap decodes one prefix-trie level against residual key
// width n.
func ParsePfxHashmap[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (Hashmap[T], error) {
	prefix, err := ParseHmLabel(p, n)
	if err != nil {
		var zero Hashmap[T]
		return zero, cell.WithField("label", err)
	}
	m := n - len(prefix)
	node, err := parsePfxHashmapNode[T, A](p, m)
	if err != nil {
		var zero Hashmap[T]
		return zero, cell.WithField("node", err)
	}
	return Hashmap[T]{Prefix: prefix, Node: node}, nil
}

// unlike the plain Hashmap, the fork/leaf tag bit is always present, and
// a fork at m==0 is rejected as "key is too long" rather than being
// structurally impossible (spec §4.5).
func storePfxHashmapNode[T any, A tlb.Adapter[T]](b *cell.Builder, node Node[T], m int) error {
	if err := b.StoreBit(node.IsFork); err != nil {
		return err
	}
	var a A
	if !node.IsFork {
		return a.StoreTLB(b, node.Leaf)
	}
	if m == 0 {
		return cell.NewCustomError("key is too long")
	}
	for i, child := range node.Fork {
		if err := storePfxHashmapRef[T, A](b, child, m-1); err != nil {
			return cell.WithIndex(i, err)
		}
	}
	return nil
}

func parsePfxHashmapNode[T any, A tlb.Adapter[T]](p *cell.Parser, m int) (Node[T], error) {
	isFork, err := p.PopBit()
	if err != nil {
		var zero Node[T]
		return zero, err
	}
	var a A
	if !isFork {
		v, err := a.ParseTLB(p)
		if err != nil {
			var zero Node[T]
			return zero, err
		}
		return Node[T]{Leaf: v}, nil
	}
	if m == 0 {
		return Node[T]{}, cell.NewCustomError("key is too long")
	}
	var fork [2]*Hashmap[T]
	for i := range fork {
		hm, err := parsePfxHashmapRef[T, A](p, m-1)
		if err != nil {
			var zero Node[T]
			return zero, cell.WithIndex(i, err)
		}
		fork[i] = hm
	}
	return Node[T]{IsFork: true, Fork: fork}, nil
}

func storePfxHashmapRef[T any, A tlb.Adapter[T]](b *cell.Builder, hm *Hashmap[T], n int) error {
	child := cell.NewBuilder()
	if err := StorePfxHashmap[T, A](child, *hm, n); err != nil {
		return cell.WithRefHop(err)
	}
	c, err := child.IntoCell()
	if err != nil {
		return cell.WithRefHop(err)
	}
	return b.StoreReference(c)
}

func parsePfxHashmapRef[T any, A tlb.Adapter[T]](p *cell.Parser, n int) (*Hashmap[T], error) {
	c, err := p.PopReference()
	if err != nil {
		return nil, err
	}
	cp := cell.NewParser(c)
	hm, err := ParsePfxHashmap[T, A](cp, n)
	if err != nil {
		return nil, cell.WithRefHop(err)
	}
	if err := cp.EnsureEmpty(); err != nil {
		return nil, cell.WithRefHop(err)
	}
	return &hm, nil
}
