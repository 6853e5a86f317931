package service

import (
	"context"

	"TxVisualizer/internal/domain"
)

type RunScenarioService struct {
	scenarios   *domain.ScenarioRegistry
	coordinator *domain.BatchCoordinator
}

func NewRunScenarioService(scenarios *domain.ScenarioRegistry, coordinator *domain.BatchCoordinator) *RunScenarioService {
	return &RunScenarioService{
		scenarios:   scenarios,
		coordinator: coordinator,
	}
}

type RunScenarioCommand struct {
	Scenario string
	// Amounts are raw user entries, one per transfer pair.
	Amounts []string
}

type RunScenarioResult struct {
	Batch    domain.BatchResult
	Accounts []domain.AccountSnapshot
}

func (s *RunScenarioService) Execute(ctx context.Context, command RunScenarioCommand) (RunScenarioResult, error) {
	scenario, err := s.scenarios.Get(command.Scenario)
	if err != nil {
		return RunScenarioResult{}, err
	}
	batch, err := s.coordinator.Run(ctx, scenario.NewBatch(command.Amounts))
	if err != nil {
		return RunScenarioResult{}, err
	}
	accounts, err := scenario.Snapshots(ctx)
	if err != nil {
		return RunScenarioResult{}, err
	}
	return RunScenarioResult{Batch: batch, Accounts: accounts}, nil
}
