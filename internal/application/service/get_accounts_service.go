package service

import (
	"context"

	"TxVisualizer/internal/domain"
)

type GetAccountsService struct {
	scenarios *domain.ScenarioRegistry
}

func NewGetAccountsService(scenarios *domain.ScenarioRegistry) *GetAccountsService {
	return &GetAccountsService{
		scenarios: scenarios,
	}
}

type GetAccountsQuery struct {
	Scenario string
}

type GetAccountsResult struct {
	Accounts []domain.AccountSnapshot
}

func (s *GetAccountsService) Execute(ctx context.Context, query GetAccountsQuery) (GetAccountsResult, error) {
	scenario, err := s.scenarios.Get(query.Scenario)
	if err != nil {
		return GetAccountsResult{}, err
	}
	accounts, err := scenario.Snapshots(ctx)
	if err != nil {
		return GetAccountsResult{}, err
	}
	return GetAccountsResult{Accounts: accounts}, nil
}
