package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus summarizes an evaluation as a whole
type ReportStatus string

const (
	ReportStatusAccepted ReportStatus = "ACCEPTED"
	ReportStatusRejected ReportStatus = "REJECTED"
)

// SubmissionReport is the terminal artifact of one evaluation. It is a value;
// nothing mutates it after construction.
type SubmissionReport struct {
	SubmissionID   uuid.UUID         `json:"submissionId"`
	Status         ReportStatus      `json:"status"`
	Verdicts       []TestCaseVerdict `json:"verdicts"`
	TotalCount     int               `json:"totalCount"`
	PassedCount    int               `json:"passedCount"`
	FailedCount    int               `json:"failedCount"`
	TotalElapsedMs int64             `json:"totalElapsedMs"`
	Quality        QualitySignals    `json:"qualitySignals"`
	Suspicion      SuspicionSignals  `json:"suspicionSignals"`
	CompletedAt    time.Time         `json:"completedAt"`
}

// NewSubmissionReport assembles the final report from the ordered verdicts
// and the analyzer signals.
func NewSubmissionReport(submissionID uuid.UUID, verdicts []TestCaseVerdict, quality QualitySignals, suspicion SuspicionSignals) *SubmissionReport {
	report := &SubmissionReport{
		SubmissionID: submissionID,
		Verdicts:     verdicts,
		TotalCount:   len(verdicts),
		Quality:      quality,
		Suspicion:    suspicion,
		CompletedAt:  time.Now(),
	}
	for _, v := range verdicts {
		if v.Passed {
			report.PassedCount++
		}
		report.TotalElapsedMs += v.Outcome.ElapsedMs
	}
	report.FailedCount = report.TotalCount - report.PassedCount
	if report.PassedCount == report.TotalCount {
		report.Status = ReportStatusAccepted
	} else {
		report.Status = ReportStatusRejected
	}
	return report
}
