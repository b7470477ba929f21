package hashmap

import "github.com/akostylev0/toner/cell"

// Entry is one (key, value) pair of a hashmap, with Key given as MSB-first
// bits of the hashmap's fixed key width.
type Entry[T any] struct {
	Key   []bool
	Value T
}

// Build constructs the canonical label-compressed trie for entries, all
// of whose keys must be exactly n bits long and pairwise distinct. This
// is the insertion-order-independent construction exercised by the
// round-trip property in spec §8 point 7.
func Build[T any](entries []Entry[T], n int) (*Hashmap[T], error) {
	if len(entries) == 0 {
		return nil, nil
	}
	for _, e := range entries {
		if len(e.Key) != n {
			return nil, cell.NewCustomError("hashmap: entry key length does not match declared width")
		}
	}
	hm := buildLevel(entries)
	return &hm, nil
}

func buildLevel[T any](entries []Entry[T]) Hashmap[T] {
	prefix := commonPrefix(entries)
	rest := stripPrefix(entries, len(prefix))
	if len(rest) == 1 {
		full := append(append([]bool{}, prefix...), rest[0].Key...)
		return Hashmap[T]{Prefix: full, Node: Node[T]{Leaf: rest[0].Value}}
	}

	var zeros, ones []Entry[T]
	for _, e := range rest {
		if e.Key[0] {
			ones = append(ones, Entry[T]{Key: e.Key[1:], Value: e.Value})
		} else {
			zeros = append(zeros, Entry[T]{Key: e.Key[1:], Value: e.Value})
		}
	}
	left := buildLevel(zeros)
	right := buildLevel(ones)
	return Hashmap[T]{Prefix: prefix, Node: Node[T]{IsFork: true, Fork: [2]*Hashmap[T]{&left, &right}}}
}

func commonPrefix[T any](entries []Entry[T]) []bool {
	first := entries[0].Key
	for i := 0; i < len(first); i++ {
		for _, e := range entries[1:] {
			if i >= len(e.Key) || e.Key[i] != first[i] {
				return append([]bool{}, first[:i]...)
			}
		}
	}
	return append([]bool{}, first...)
}

func stripPrefix[T any](entries []Entry[T], l int) []Entry[T] {
	out := make([]Entry[T], len(entries))
	for i, e := range entries {
		out[i] = Entry[T]{Key: e.Key[l:], Value: e.Value}
	}
	return out
}

// Collect walks hm back into its (key, value) entries, in left-to-right
// trie order.
func Collect[T any](hm *Hashmap[T]) []Entry[T] {
	if hm == nil {
		return nil
	}
	return collectNode(hm.Prefix, hm.Node)
}

func collectNode[T any](prefix []bool, node Node[T]) []Entry[T] {
	if !node.IsFork {
		key := append([]bool{}, prefix...)
		return []Entry[T]{{Key: key, Value: node.Leaf}}
	}
	var out []Entry[T]
	leftPrefix := append(append([]bool{}, prefix...), false)
	leftPrefix = append(leftPrefix, node.Fork[0].Prefix...)
	out = append(out, collectNode(leftPrefix, node.Fork[0].Node)...)

	rightPrefix := append(append([]bool{}, prefix...), true)
	rightPrefix = append(rightPrefix, node.Fork[1].Prefix...)
	out = append(out, collectNode(rightPrefix, node.Fork[1].Node)...)
	return out
}
