package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the engagement workbook: a summary sheet with the record
// and its derived metrics, and a sheet with the full event log.
func (g *Generator) Generate(report model.EngagementReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	eventsSheet := "Events"
	if _, err := file.NewSheet(eventsSheet); err != nil {
		return nil, err
	}
	if err := g.writeEvents(file, eventsSheet, report.Events); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.EngagementReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Client")
	set("B1", report.Proposal.ClientName)
	set("A2", "Slug")
	set("B2", report.Proposal.Slug)
	set("A3", "Status")
	set("B3", string(report.Proposal.Status))
	set("A4", "Created")
	set("B4", formatTimeValue(report.Proposal.CreatedAt))
	set("A5", "First viewed")
	set("B5", formatTimePtr(report.Proposal.ViewedAt))
	set("A6", "Accepted")
	set("B6", formatTimePtr(report.Proposal.AcceptedAt))

	set("A8", "Views")
	set("B8", report.Metrics.ViewCount)
	set("A9", "Pricing views")
	set("B9", report.Metrics.PricingViewCount)
	set("A10", "Services explored")
	set("B10", strings.Join(report.Metrics.ServicesExplored, ", "))
	set("A11", "Total events")
	set("B11", report.Metrics.TotalEvents)

	return nil
}

func (g *Generator) writeEvents(file *excelize.File, sheet string, events []model.ProposalEvent) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Time")
	set("B1", "Event")
	set("C1", "Metadata")
	set("D1", "IP")
	set("E1", "User agent")

	for i, event := range events {
		row := i + 2
		set(fmt.Sprintf("A%d", row), formatTimeValue(event.CreatedAt))
		set(fmt.Sprintf("B%d", row), string(event.EventType))
		set(fmt.Sprintf("C%d", row), string(event.Metadata))
		set(fmt.Sprintf("D%d", row), deref(event.IPAddress))
		set(fmt.Sprintf("E%d", row), deref(event.UserAgent))
	}
	return nil
}

func formatTimeValue(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTimeValue(*t)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
