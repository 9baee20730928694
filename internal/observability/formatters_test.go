package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/db"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs(view.ListState[types.Job]{
		Phase: view.PhaseReady,
		Shape: api.ShapeArray,
		Items: []types.Job{
			{ID: "1", Title: "Senior Backend Engineer", Department: "Engineering", Location: "Addis Ababa", Type: "Full-time",
				Requirements: []string{"Go", "PostgreSQL"}},
			{ID: "2", Title: "Product Designer"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "OPEN POSITIONS")
	assert.Contains(t, output, "2 open positions")
	assert.Contains(t, output, "#1  Senior Backend Engineer")
	assert.Contains(t, output, "Engineering · Addis Ababa · Full-time")
	assert.Contains(t, output, "Requires: Go, PostgreSQL")
	assert.Contains(t, output, "#2  Product Designer")
}

func TestPrintJobs_States(t *testing.T) {
	tests := []struct {
		name  string
		state view.ListState[types.Job]
		want  string
	}{
		{"loading", view.ListState[types.Job]{Phase: view.PhaseLoading}, "Loading jobs..."},
		{"error", view.ListState[types.Job]{Phase: view.PhaseError, Err: "Failed to fetch jobs (HTTP 500)"}, "Error: Failed to fetch jobs (HTTP 500)"},
		{"empty", view.ListState[types.Job]{Phase: view.PhaseReady}, "No jobs found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintJobs(tt.state)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrintJobs_Truncates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	jobs := make([]types.Job, 8)
	for i := range jobs {
		jobs[i] = types.Job{ID: types.FlexString(fmt.Sprint(i + 1)), Title: "Engineer"}
	}
	p.PrintJobs(view.ListState[types.Job]{Phase: view.PhaseReady, Items: jobs})

	assert.Contains(t, buf.String(), "... and 3 more jobs")
	assert.NotContains(t, buf.String(), "#6")
}

func TestPrintProducts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProducts(view.ListState[types.Product]{
		Phase: view.PhaseReady,
		Shape: api.ShapeWrapped,
		Items: []types.Product{
			{ID: 1, Name: "ERP Solutions Suite", Category: "Enterprise", Rating: 4.8, Users: "500+", Status: types.StatusAvailable, Price: "Contact for pricing"},
			{ID: 6, Name: "Financial Analytics AI", Category: "FinTech", Rating: 0, Status: types.StatusComingSoon},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "PRODUCTS")
	assert.Contains(t, output, "#1  ERP Solutions Suite [Enterprise]")
	assert.Contains(t, output, "★ 4.8  500+ users")
	assert.Contains(t, output, "Contact for pricing")
	assert.Contains(t, output, "Coming Soon")
	assert.NotContains(t, output, "★ 0.0")
}

func TestPrintProducts_Error(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProducts(view.ListState[types.Product]{Phase: view.PhaseError, Err: "boom"})
	assert.Contains(t, buf.String(), "Error: boom")
}

func TestPrintContactMessages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContactMessages([]db.ContactMessage{{
		ID:        uuid.New(),
		FirstName: "Abebe",
		LastName:  "Kebede",
		Email:     "abebe@example.com",
		Subject:   "New project",
		Message:   "We need\na school management system for three campuses in Addis Ababa.",
		CreatedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}})
	output := buf.String()

	assert.Contains(t, output, "CONTACT MESSAGES")
	assert.Contains(t, output, "New project")
	assert.Contains(t, output, "Abebe Kebede <abebe@example.com>")
	assert.Contains(t, output, "2024-05-01 09:30")
	assert.Contains(t, output, "We need a school")
	assert.Contains(t, output, "...")
}

func TestPrintContactMessages_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintContactMessages(nil)
	assert.Contains(t, buf.String(), "No contact messages yet")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "ሰላም ...", truncate("ሰላም ሶፍትዌር", 7))
}
