package domain

import (
	"context"
	"sort"

	"TxVisualizer/internal/syncutil"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	DeadlockScenario   = "deadlock"
	NoDeadlockScenario = "no-deadlock"
)

type AccountSpec struct {
	Name     string
	Balance  decimal.Decimal
	Priority int
}

type TransferPair struct {
	From string
	To   string
}

// Scenario is a fixed set of accounts plus the transfer pairs run against them
// as one batch. Accounts outlive batches, so balances carry over between runs.
type Scenario struct {
	Name          string
	Description   string
	Pairs         []TransferPair
	DefaultAmount string

	accounts []*Account
	byName   map[string]*Account
}

func NewScenario(name, description string, accounts []AccountSpec, pairs []TransferPair, defaultAmount string) (*Scenario, error) {
	s := &Scenario{
		Name:          name,
		Description:   description,
		Pairs:         pairs,
		DefaultAmount: defaultAmount,
		byName:        make(map[string]*Account, len(accounts)),
	}
	for _, spec := range accounts {
		if _, dup := s.byName[spec.Name]; dup {
			return nil, errors.Newf("scenario %s: duplicate account %q", name, spec.Name)
		}
		acc := NewAccount(spec.Name, spec.Balance, spec.Priority)
		s.accounts = append(s.accounts, acc)
		s.byName[spec.Name] = acc
	}
	for _, p := range pairs {
		if _, ok := s.byName[p.From]; !ok {
			return nil, errors.Wrapf(ErrUnknownAccount, "scenario %s: %q", name, p.From)
		}
		if _, ok := s.byName[p.To]; !ok {
			return nil, errors.Wrapf(ErrUnknownAccount, "scenario %s: %q", name, p.To)
		}
	}
	return s, nil
}

func (s *Scenario) Account(name string) (*Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

func (s *Scenario) Accounts() []*Account {
	out := make([]*Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Snapshots reads every account under its own lock, in declaration order.
func (s *Scenario) Snapshots(ctx context.Context) ([]AccountSnapshot, error) {
	out := make([]AccountSnapshot, 0, len(s.accounts))
	for _, a := range s.accounts {
		snap, err := a.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

// NewBatch builds one request per pair. amounts[i] overrides the amount for
// pair i; missing or empty entries use DefaultAmount.
func (s *Scenario) NewBatch(amounts []string) *BatchRun {
	requests := make([]TransferRequest, 0, len(s.Pairs))
	for i, p := range s.Pairs {
		raw := s.DefaultAmount
		if i < len(amounts) && amounts[i] != "" {
			raw = amounts[i]
		}
		requests = append(requests, NewTransferRequest(s.byName[p.From], s.byName[p.To], raw))
	}
	return NewBatchRun(s.Name, requests)
}

// CyclicPairs returns A→B, B→C, ..., last→A over names.
func CyclicPairs(names ...string) []TransferPair {
	pairs := make([]TransferPair, 0, len(names))
	for i, n := range names {
		pairs = append(pairs, TransferPair{From: n, To: names[(i+1)%len(names)]})
	}
	return pairs
}

func DefaultScenarios(defaultAmount string) ([]*Scenario, error) {
	names := []string{"Account A", "Account B", "Account C", "Account D"}
	balances := []int64{5000, 3000, 4000, 6000}
	specs := func(ranks ...int) []AccountSpec {
		out := make([]AccountSpec, len(names))
		for i := range names {
			out[i] = AccountSpec{Name: names[i], Balance: decimal.NewFromInt(balances[i]), Priority: ranks[i]}
		}
		return out
	}

	deadlock, err := NewScenario(DeadlockScenario,
		"B and C share priority 2, A and D share priority 1",
		specs(1, 2, 2, 1), CyclicPairs(names...), defaultAmount)
	if err != nil {
		return nil, err
	}
	noDeadlock, err := NewScenario(NoDeadlockScenario,
		"strictly increasing priorities give a total lock order",
		specs(1, 2, 3, 4), CyclicPairs(names...), defaultAmount)
	if err != nil {
		return nil, err
	}
	return []*Scenario{deadlock, noDeadlock}, nil
}

type ScenarioRegistry struct {
	mu        syncutil.RWMutex
	scenarios map[string]*Scenario
}

func NewScenarioRegistry(scenarios ...*Scenario) *ScenarioRegistry {
	r := &ScenarioRegistry{scenarios: make(map[string]*Scenario)}
	for _, s := range scenarios {
		r.scenarios[s.Name] = s
	}
	return r
}

func (r *ScenarioRegistry) Register(s *Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[s.Name] = s
}

func (r *ScenarioRegistry) Get(name string) (*Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scenarios[name]
	if !ok {
		return nil, errors.Wrapf(ErrScenarioNotFound, "%q", name)
	}
	return s, nil
}

func (r *ScenarioRegistry) List() []*Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Scenario, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
