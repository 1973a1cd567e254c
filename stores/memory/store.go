// Package memory keeps every marketplace table in process. It backs the api in
// memory mode and the end to end tests.
package memory

import (
	"sync"

	"github.com/x-xyz/nftmarket/base/ctx"
	"github.com/x-xyz/nftmarket/domain"
	"github.com/x-xyz/nftmarket/domain/auction"
	"github.com/x-xyz/nftmarket/domain/custody"
	"github.com/x-xyz/nftmarket/domain/event"
	"github.com/x-xyz/nftmarket/domain/listing"
	"github.com/x-xyz/nftmarket/domain/pricefeed"
	"github.com/x-xyz/nftmarket/domain/settlement"
)

type operatorKey struct {
	contract domain.Address
	owner    domain.Address
	operator domain.Address
}

type balanceKey struct {
	currency domain.Currency
	holder   domain.Address
}

type allowanceKey struct {
	currency domain.Currency
	owner    domain.Address
	spender  domain.Address
}

type tables struct {
	counters   map[string]int64
	listings   map[int64]listing.Listing
	auctions   map[int64]auction.Auction
	escrow     map[auction.EscrowKey]auction.EscrowEntry
	bindings   map[domain.Currency]pricefeed.Binding
	fee        *settlement.FeeConfig
	events     []event.Event
	holdings   map[domain.AssetId]custody.Holding
	operators  map[operatorKey]custody.OperatorApproval
	balances   map[balanceKey]custody.Balance
	allowances map[allowanceKey]custody.Allowance
}

func newTables() tables {
	return tables{
		counters:   map[string]int64{},
		listings:   map[int64]listing.Listing{},
		auctions:   map[int64]auction.Auction{},
		escrow:     map[auction.EscrowKey]auction.EscrowEntry{},
		bindings:   map[domain.Currency]pricefeed.Binding{},
		holdings:   map[domain.AssetId]custody.Holding{},
		operators:  map[operatorKey]custody.OperatorApproval{},
		balances:   map[balanceKey]custody.Balance{},
		allowances: map[allowanceKey]custody.Allowance{},
	}
}

func (t tables) clone() tables {
	res := newTables()
	for k, v := range t.counters {
		res.counters[k] = v
	}
	for k, v := range t.listings {
		res.listings[k] = v
	}
	for k, v := range t.auctions {
		res.auctions[k] = v
	}
	for k, v := range t.escrow {
		res.escrow[k] = v
	}
	for k, v := range t.bindings {
		res.bindings[k] = v
	}
	if t.fee != nil {
		fee := *t.fee
		res.fee = &fee
	}
	res.events = append([]event.Event{}, t.events...)
	for k, v := range t.holdings {
		res.holdings[k] = v
	}
	for k, v := range t.operators {
		res.operators[k] = v
	}
	for k, v := range t.balances {
		res.balances[k] = v
	}
	for k, v := range t.allowances {
		res.allowances[k] = v
	}
	return res
}

const txKey = "memory.tx"

// Store holds the tables. Rows are stored by value so a snapshot is a plain copy.
type Store struct {
	mu sync.RWMutex
	t  tables
	// committed is the state before the running transaction, served to readers outside it
	committed *tables
	// txMu serializes transactions so a rollback never discards another caller's writes
	txMu sync.Mutex
}

func NewStore() *Store {
	return &Store{t: newTables()}
}

// RunWithTransaction restores every table to its state before fn when fn fails.
// Until fn returns, reads from other contexts see the state before fn.
func (s *Store) RunWithTransaction(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.t.clone()
	s.committed = &snapshot
	s.mu.Unlock()

	err := fn(ctx.WithSilentValue(c, txKey, s))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.t = snapshot
	}
	s.committed = nil
	return err
}

func (s *Store) inTx(c ctx.Ctx) bool {
	if c.Context == nil {
		return false
	}
	owner, _ := c.Value(txKey).(*Store)
	return owner == s
}

// read serves committed state unless c belongs to the running transaction
func (s *Store) read(c ctx.Ctx, f func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.committed != nil && !s.inTx(c) {
		f(s.committed)
		return
	}
	f(&s.t)
}

func (s *Store) write(f func(t *tables)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(&s.t)
}

func page(n int, offset, limit *int) (int, int) {
	start, end := 0, n
	if offset != nil && *offset > 0 {
		start = *offset
	}
	if start > n {
		start = n
	}
	if limit != nil && *limit > 0 && start+*limit < end {
		end = start + *limit
	}
	return start, end
}
