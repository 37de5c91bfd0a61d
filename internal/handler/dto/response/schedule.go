package response

import (
	"time"

	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateScheduleResponse struct {
	OK bool      `json:"ok"`
	ID uuid.UUID `json:"id"`
}

type ListSchedulesResponse struct {
	OK        bool                       `json:"ok"`
	Schedules []*queries.ScheduleSummary `json:"schedules"`
}

type ProcessedScheduleResponse struct {
	ID    uuid.UUID `json:"id"`
	OK    bool      `json:"ok"`
	Error string    `json:"error,omitempty"`
}

type RunSchedulesResponse struct {
	OK        bool                        `json:"ok"`
	Now       time.Time                   `json:"now"`
	Processed []ProcessedScheduleResponse `json:"processed"`
}

func FromRunReport(report *commands.RunReport) *RunSchedulesResponse {
	processed := make([]ProcessedScheduleResponse, len(report.Processed))
	for i, p := range report.Processed {
		processed[i] = ProcessedScheduleResponse{ID: p.ID, OK: p.OK, Error: p.Error}
	}
	return &RunSchedulesResponse{OK: true, Now: report.Now, Processed: processed}
}
