package service

import (
	"TxVisualizer/internal/domain"
)

type ListScenariosService struct {
	scenarios *domain.ScenarioRegistry
}

func NewListScenariosService(scenarios *domain.ScenarioRegistry) *ListScenariosService {
	return &ListScenariosService{
		scenarios: scenarios,
	}
}

type ScenarioSummary struct {
	Name        string
	Description string
	Pairs       []domain.TransferPair
}

type ListScenariosResult struct {
	Scenarios []ScenarioSummary
}

func (s *ListScenariosService) Execute() ListScenariosResult {
	var result ListScenariosResult
	for _, sc := range s.scenarios.List() {
		result.Scenarios = append(result.Scenarios, ScenarioSummary{
			Name:        sc.Name,
			Description: sc.Description,
			Pairs:       sc.Pairs,
		})
	}
	return result
}
