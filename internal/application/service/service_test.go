package service

import (
	"context"
	"testing"
	"time"

	"TxVisualizer/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *domain.ScenarioRegistry {
	t.Helper()
	scenarios, err := domain.DefaultScenarios("100")
	require.NoError(t, err)
	return domain.NewScenarioRegistry(scenarios...)
}

func newCoordinator() *domain.BatchCoordinator {
	engine := domain.NewTransferEngine(domain.EngineConfig{
		LockTimeout:       2 * time.Second,
		SamePriorityDelay: 5 * time.Millisecond,
		AllowOverdraft:    true,
	}, nil, nil)
	return domain.NewBatchCoordinator(engine, nil, nil)
}

func Test_GivenNoDeadlockScenario_WhenRun_thenAllSucceedAndBalancesReturned(t *testing.T) {
	registry := newRegistry(t)
	s := NewRunScenarioService(registry, newCoordinator())

	result, err := s.Execute(context.Background(), RunScenarioCommand{
		Scenario: domain.NoDeadlockScenario,
		Amounts:  []string{"500", "0", "", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Batch.Verdict.FailedCount)
	require.Len(t, result.Accounts, 4)
	// A sends 500, receives 100 from D.
	assert.Equal(t, "Account A", result.Accounts[0].Name)
	assert.True(t, result.Accounts[0].Balance.Equal(decimal.NewFromInt(4600)))
}

func Test_GivenUnknownScenario_WhenRun_thenNotFound(t *testing.T) {
	s := NewRunScenarioService(newRegistry(t), newCoordinator())

	_, err := s.Execute(context.Background(), RunScenarioCommand{Scenario: "nope"})

	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func Test_GivenScenario_WhenGetAccounts_thenPriorityInfoReturned(t *testing.T) {
	s := NewGetAccountsService(newRegistry(t))

	result, err := s.Execute(context.Background(), GetAccountsQuery{Scenario: domain.DeadlockScenario})
	require.NoError(t, err)

	var priorities []int
	for _, a := range result.Accounts {
		priorities = append(priorities, a.Priority)
	}
	assert.Equal(t, []int{1, 2, 2, 1}, priorities)
}

func Test_WhenListScenarios_thenSortedByName(t *testing.T) {
	s := NewListScenariosService(newRegistry(t))

	result := s.Execute()

	require.Len(t, result.Scenarios, 2)
	assert.Equal(t, domain.DeadlockScenario, result.Scenarios[0].Name)
	assert.Equal(t, domain.NoDeadlockScenario, result.Scenarios[1].Name)
	assert.Len(t, result.Scenarios[1].Pairs, 4)
}
