package domain

import "github.com/x-xyz/nftmarket/base/ctx"

const (
	SequenceListing = "listing"
	SequenceAuction = "auction"
	SequenceEvent   = "event"
)

// Sequence is one monotonic counter document
type Sequence struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

type SequenceRepo interface {
	// Next returns the next value of the named counter, starting from 1
	Next(c ctx.Ctx, name string) (int64, error)
}
