package morph

import "iter"

// Order is an iteration strategy passed as a first-class value: given a root
// section it produces a lazy, finite sequence over that tree. Every call
// yields a fresh iterator with no shared cursor, so sequences are
// restartable and safe to consume several times. No order mutates the tree.
type Order func(root *Section) iter.Seq[*Section]

// Preorder yields each section before its children, children in insertion
// order. The walk uses an explicit stack; unbranched chains of arbitrary
// depth do not grow the call stack.
func Preorder(root *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		stack := []*Section{root}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(s) {
				return
			}
			kids := s.Children()
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, kids[i])
			}
		}
	}
}

// Postorder yields each section after all of its children.
func Postorder(root *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		type frame struct {
			sec  *Section
			next int // index of the next child to descend into
		}
		stack := []frame{{sec: root}}
		for len(stack) > 0 {
			top := len(stack) - 1
			s := stack[top].sec
			if stack[top].next < len(s.children) {
				child := s.owner.sections[s.children[stack[top].next]]
				stack[top].next++
				stack = append(stack, frame{sec: child})
				continue
			}
			stack = stack[:top]
			if !yield(s) {
				return
			}
		}
	}
}

// Upstream yields the section itself and then each ancestor up to and
// including the parentless root of its tree.
func Upstream(start *Section) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for s := start; s != nil; s = s.Parent() {
			if !yield(s) {
				return
			}
		}
	}
}

// Leaves yields the sections with no children, in preorder.
func Leaves(root *Section) iter.Seq[*Section] {
	return Filter(Preorder(root), (*Section).IsLeaf)
}

// ForkingPoints yields the sections ending in a forking point (more than
// one child), in preorder.
func ForkingPoints(root *Section) iter.Seq[*Section] {
	return Filter(Preorder(root), (*Section).IsForkingPoint)
}

// BifurcationPoints yields the sections ending in a bifurcation (exactly
// two children), in preorder.
func BifurcationPoints(root *Section) iter.Seq[*Section] {
	return Filter(Preorder(root), (*Section).IsBifurcationPoint)
}

// Filter yields the elements of seq for which pred is true, without
// materializing intermediate slices.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Map fuses a mapping function onto seq, yielding f applied to each element.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// NeuriteFilter selects neurites for forest iteration.
type NeuriteFilter func(*Neurite) bool

// TypeFilter returns a filter accepting neurites of the given type.
func TypeFilter(t NeuriteType) NeuriteFilter {
	return func(n *Neurite) bool { return n.Type() == t }
}

// Iter chains the given per-tree order across the morphology's neurites,
// keeping only neurites accepted by every filter. A subtree that mixes
// neurite types is iterated as one unit; callers wanting to split at the
// type boundary compose a section-level [Filter] on the result instead:
//
//	axonal := morph.Filter(m.Iter(morph.Preorder), func(s *morph.Section) bool {
//		return s.Type() == morph.TypeAxon
//	})
func (m *Morphology) Iter(order Order, filters ...NeuriteFilter) iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
	next:
		for _, n := range m.neurites {
			for _, keep := range filters {
				if !keep(n) {
					continue next
				}
			}
			for s := range order(n.RootNode()) {
				if !yield(s) {
					return
				}
			}
		}
	}
}
