package unique

import (
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/m4gshm/gollections/seq"
)

// NewNames creates an identifier allocator preinitialized with already
// occupied names, usually the package scope the generated code is emitted to.
func NewNames(occupied ...string) *Names {
	u := &Names{uniques: mutable.NewSet[string]()}
	seq.ForEach(seq.Of(occupied...), u.Add)
	return u
}

type Names struct {
	uniques *mutable.Set[string]
}

// Get returns name if it is still free, otherwise the first name+N free
// variant. The returned identifier is marked occupied.
func (u *Names) Get(name string) string {
	if u == nil {
		return name
	}
	for i := 1; !u.uniques.AddNew(name); i++ {
		name += strconv.Itoa(i)
	}
	return name
}

func (u *Names) Add(name string) {
	u.Get(name)
}
