package hashmap

// Aggregate is a pure fold over a hashmap's shape: Leaf converts one
// value into the aggregate, Fork combines a pair of child aggregates into
// a parent one (spec §9 Open Question 2 — "the aggregate [is] a pure fold
// parameterised by the codec for E and the fork-combining function, no
// implicit global state"). No AugHashmap wrapper type is kept alongside
// the plain trie; Fold recomputes E on demand from Hashmap[T] directly,
// which is enough for every augmented use spec.md names.
type Aggregate[T any, E any] interface {
	Leaf(value T) E
	Fork(left, right E) E
}

// Fold computes the aggregate of an entire hashmap using ag.
func Fold[T any, E any, Ag Aggregate[T, E]](hm *Hashmap[T]) (E, bool) {
	var zero E
	if hm == nil {
		return zero, false
	}
	return foldNode[T, E, Ag](hm.Node), true
}

func foldNode[T any, E any, Ag Aggregate[T, E]](node Node[T]) E {
	var ag Ag
	if !node.IsFork {
		return ag.Leaf(node.Leaf)
	}
	left := foldNode[T, E, Ag](node.Fork[0].Node)
	right := foldNode[T, E, Ag](node.Fork[1].Node)
	return ag.Fork(left, right)
}
