package domain

import "fmt"

type Verdict struct {
	BatchId      string `json:"batch_id"`
	AllSucceeded bool   `json:"all_succeeded"`
	FailedCount  int    `json:"failed_count"`
	Total        int    `json:"total"`
}

func VerdictFrom(batchId string, outcomes []TransferOutcome) Verdict {
	failed := 0
	for _, o := range outcomes {
		if !o.Success {
			failed++
		}
	}
	return Verdict{
		BatchId:      batchId,
		AllSucceeded: failed == 0,
		FailedCount:  failed,
		Total:        len(outcomes),
	}
}

func (v Verdict) Message() string {
	if v.AllSucceeded {
		return "All transactions completed successfully! No Deadlocks."
	}
	return fmt.Sprintf("%d transaction(s) failed due to deadlock!", v.FailedCount)
}
