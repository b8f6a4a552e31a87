// Package document demonstrates flat path annotations on a record and on a
// union next to the generated output checked in beside them.
package document

//go:generate go run github.com/m4gshm/flatpath -type Metadata gen
//go:generate go run github.com/m4gshm/flatpath -type Event gen

// Metadata stays flat in memory while several of its fields nest in JSON.
type Metadata struct {
	ID     string  `json:"id"`
	Score  float64 `flat:"stats,score"`
	Region string  `flat:"geo,region,name" json:",omitempty"`
	Note   string  `flat:"meta,note" json:"comment"`
	Rev    int     `json:"rev"`
}

// Event is a union, every struct of this package implementing it is a variant.
type Event interface {
	isEvent()
}

type Created struct {
	At string `json:"at"`
	By string `flat:"p,q"`
}

func (Created) isEvent() {}

type Deleted struct {
	By string `flat:"p,q"`
}

func (Deleted) isEvent() {}
