package scenario

import (
	"TxVisualizer/internal/application/service"
	"TxVisualizer/internal/domain"
)

type RunScenarioRequest struct {
	Amounts []string `json:"amounts,omitempty"`
}

type AccountResponse struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Balance  string `json:"balance"`
}

type OutcomeResponse struct {
	TransferId string  `json:"transfer_id"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	Amount     string  `json:"amount,omitempty"`
	Success    bool    `json:"success"`
	Seconds    float64 `json:"seconds,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	Error      string  `json:"error,omitempty"`
}

type VerdictResponse struct {
	AllSucceeded bool   `json:"all_succeeded"`
	FailedCount  int    `json:"failed_count"`
	Total        int    `json:"total"`
	Message      string `json:"message"`
}

type RunScenarioResponse struct {
	BatchId  string            `json:"batch_id"`
	Scenario string            `json:"scenario"`
	Outcomes []OutcomeResponse `json:"outcomes"`
	Verdict  VerdictResponse   `json:"verdict"`
	Accounts []AccountResponse `json:"accounts"`
}

type ScenarioResponse struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Pairs       [][]string `json:"pairs"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func MapToAccountResponses(snaps []domain.AccountSnapshot) []AccountResponse {
	out := make([]AccountResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, AccountResponse{Name: s.Name, Priority: s.Priority, Balance: s.Balance.String()})
	}
	return out
}

func MapToRunScenarioResponse(r service.RunScenarioResult) RunScenarioResponse {
	resp := RunScenarioResponse{
		BatchId:  r.Batch.BatchId,
		Scenario: r.Batch.Scenario,
		Outcomes: make([]OutcomeResponse, 0, len(r.Batch.Outcomes)),
		Verdict: VerdictResponse{
			AllSucceeded: r.Batch.Verdict.AllSucceeded,
			FailedCount:  r.Batch.Verdict.FailedCount,
			Total:        r.Batch.Verdict.Total,
			Message:      r.Batch.Verdict.Message(),
		},
		Accounts: MapToAccountResponses(r.Accounts),
	}
	for _, o := range r.Batch.Outcomes {
		or := OutcomeResponse{
			TransferId: o.TransferId,
			From:       o.From,
			To:         o.To,
			Success:    o.Success,
		}
		if !o.Amount.IsZero() {
			or.Amount = o.Amount.String()
		}
		if o.Success {
			or.Seconds = domain.DurationSample{Duration: o.Duration}.Seconds()
		} else {
			or.Reason = string(o.Reason)
			or.Error = o.Err.Error()
		}
		resp.Outcomes = append(resp.Outcomes, or)
	}
	return resp
}

func MapToScenarioResponses(r service.ListScenariosResult) []ScenarioResponse {
	out := make([]ScenarioResponse, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		pairs := make([][]string, 0, len(s.Pairs))
		for _, p := range s.Pairs {
			pairs = append(pairs, []string{p.From, p.To})
		}
		out = append(out, ScenarioResponse{Name: s.Name, Description: s.Description, Pairs: pairs})
	}
	return out
}
