package puers

import (
	"slices"

	"github.com/arielf-camacho/pue/primitives"
)

// attachment boxes a puee so it can be found again by identity: puees built
// from funcs are not comparable.
type attachment[P any] struct {
	puee P
}

// attachments is an insertion ordered list of puees.
type attachments[P any] struct {
	items []*attachment[P]
}

// add appends p and returns a controller detaching exactly that attachment.
func (a *attachments[P]) add(p P) primitives.Pushee[primitives.Command] {
	entry := &attachment[P]{puee: p}
	a.items = append(a.items, entry)
	return primitives.Canceller(func() { a.remove(entry) })
}

func (a *attachments[P]) remove(entry *attachment[P]) {
	if i := slices.Index(a.items, entry); i >= 0 {
		a.items = slices.Delete(a.items, i, i+1)
	}
}

func (a *attachments[P]) len() int {
	return len(a.items)
}
