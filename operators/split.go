package operators

import (
	"github.com/arielf-camacho/pue/primitives"
)

// ASplit routes every pushed item either to matching or to nonMatching,
// depending on pred.
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -->
//
// -- ASplit f(x) = x % 2 == 0 --
//
// Matching:
// ------- 2 ------- 4 ------->
//
// NonMatching:
// -- 1 ------- 3 ------- 5 -->
func ASplit[A any](
	matching primitives.Pushee[A],
	nonMatching primitives.Pushee[A],
	pred func(A) bool,
) primitives.Pushee[A] {
	if pred == nil {
		panic("ASplit requires a non-nil predicate function")
	}

	return primitives.PusheeFunc[A](func(a A) {
		if pred(a) {
			matching.Call(a)
		} else {
			nonMatching.Call(a)
		}
	})
}

// ANSplit is ASplit for null-terminated streams: the nil terminator ends both
// outputs, matching first.
func ANSplit[A any](
	matching primitives.Pushee[*A],
	nonMatching primitives.Pushee[*A],
	pred func(A) bool,
) primitives.Pushee[*A] {
	if pred == nil {
		panic("ANSplit requires a non-nil predicate function")
	}

	return primitives.PusheeFunc[*A](func(a *A) {
		switch {
		case a == nil:
			matching.Call(nil)
			nonMatching.Call(nil)
		case pred(*a):
			matching.Call(a)
		default:
			nonMatching.Call(a)
		}
	})
}
