package crm

import (
	"context"
	"encoding/json"
	"time"

	"kai-assistant/internal/application/port/output"
	"kai-assistant/internal/domain/entity"
)

const defaultAtRiskDays = 30

// RegisterTools wires every CRM tool into the registry. The resulting
// Definitions() is the static tool set the orchestrator exposes.
func RegisterTools(registry output.ToolRegistry, store *Store, log output.LoggerPort) {
	registry.Register(&GetStudentCountTool{store: store, logger: log})
	registry.Register(&FindStudentTool{store: store, logger: log})
	registry.Register(&GetStudentTool{store: store, logger: log})
	registry.Register(&SearchStudentsTool{store: store, logger: log})
	registry.Register(&ListAtRiskStudentsTool{store: store, logger: log})
	registry.Register(&GetRevenueTool{store: store, logger: log})
	registry.Register(&GetLeadsTool{store: store, logger: log})
	registry.Register(&SearchLeadsTool{store: store, logger: log})
}

func studentRecord(st entity.Student) map[string]any {
	return map[string]any{
		"id":        st.ID,
		"firstName": st.FirstName,
		"lastName":  st.LastName,
		"email":     st.Email,
		"program":   st.Program,
		"belt":      st.Belt,
		"status":    string(st.Status),
	}
}

func studentRecords(students []entity.Student) []any {
	result := make([]any, 0, len(students))
	for _, st := range students {
		result = append(result, studentRecord(st))
	}
	return result
}

func leadRecord(l entity.Lead) map[string]any {
	return map[string]any{
		"id":        l.ID,
		"firstName": l.FirstName,
		"lastName":  l.LastName,
		"email":     l.Email,
		"phone":     l.Phone,
		"source":    l.Source,
		"status":    string(l.Status),
	}
}

func leadRecords(leads []entity.Lead) []any {
	result := make([]any, 0, len(leads))
	for _, l := range leads {
		result = append(result, leadRecord(l))
	}
	return result
}

type GetStudentCountTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *GetStudentCountTool) Name() entity.ToolName { return entity.ToolGetStudentCount }
func (t *GetStudentCountTool) Description() string {
	return "Returns the number of active students in the school"
}
func (t *GetStudentCountTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *GetStudentCountTool) Execute(ctx context.Context, args string) (any, error) {
	return map[string]any{"count": t.store.StudentCount()}, nil
}

type FindStudentTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *FindStudentTool) Name() entity.ToolName { return entity.ToolFindStudent }
func (t *FindStudentTool) Description() string {
	return "Finds the single best-matching student by name or email"
}
func (t *FindStudentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Name or email to look up",
			},
		},
		"required": []string{"query"},
	}
}

func (t *FindStudentTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	st, ok := t.store.FindStudent(input.Query)
	if !ok {
		return nil, nil
	}
	return studentRecord(st), nil
}

type GetStudentTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *GetStudentTool) Name() entity.ToolName { return entity.ToolGetStudent }
func (t *GetStudentTool) Description() string {
	return "Returns one student by id"
}
func (t *GetStudentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"studentId": map[string]interface{}{
				"type":        "integer",
				"description": "Student id",
			},
		},
		"required": []string{"studentId"},
	}
}

func (t *GetStudentTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		StudentID int64 `json:"studentId"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	st, ok := t.store.GetStudent(input.StudentID)
	if !ok {
		return nil, nil
	}
	return studentRecord(st), nil
}

type SearchStudentsTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *SearchStudentsTool) Name() entity.ToolName { return entity.ToolSearchStudents }
func (t *SearchStudentsTool) Description() string {
	return "Searches students by name or email; returns all matches"
}
func (t *SearchStudentsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search text matched against name and email",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchStudentsTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	return studentRecords(t.store.SearchStudents(input.Query)), nil
}

type ListAtRiskStudentsTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *ListAtRiskStudentsTool) Name() entity.ToolName { return entity.ToolListAtRiskStudents }
func (t *ListAtRiskStudentsTool) Description() string {
	return "Lists active students who have not visited recently"
}
func (t *ListAtRiskStudentsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"days": map[string]interface{}{
				"type":        "integer",
				"description": "Absence threshold in days, default 30",
			},
		},
	}
}

func (t *ListAtRiskStudentsTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Days int `json:"days"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	if input.Days <= 0 {
		input.Days = defaultAtRiskDays
	}
	return studentRecords(t.store.AtRiskStudents(input.Days, time.Now())), nil
}

type GetRevenueTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *GetRevenueTool) Name() entity.ToolName { return entity.ToolGetRevenue }
func (t *GetRevenueTool) Description() string {
	return "Returns collected revenue for a month"
}
func (t *GetRevenueTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"period": map[string]interface{}{
				"type":        "string",
				"description": "Month in YYYY-MM format; omit for the current month",
			},
		},
	}
}

func (t *GetRevenueTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Period string `json:"period"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	total, period := t.store.Revenue(input.Period, time.Now())
	return map[string]any{"total": total, "period": period}, nil
}

type GetLeadsTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *GetLeadsTool) Name() entity.ToolName { return entity.ToolGetLeads }
func (t *GetLeadsTool) Description() string {
	return "Returns open leads, optionally filtered by status"
}
func (t *GetLeadsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"new", "contacted", "trial", "converted", "lost"},
				"description": "Lead status filter; omit for all open leads",
			},
		},
	}
}

func (t *GetLeadsTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	return leadRecords(t.store.Leads(entity.LeadStatus(input.Status))), nil
}

type SearchLeadsTool struct {
	store  *Store
	logger output.LoggerPort
}

func (t *SearchLeadsTool) Name() entity.ToolName { return entity.ToolSearchLeads }
func (t *SearchLeadsTool) Description() string {
	return "Searches leads by name or email; returns all matches"
}
func (t *SearchLeadsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search text matched against name and email",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchLeadsTool) Execute(ctx context.Context, args string) (any, error) {
	var input struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return nil, err
	}
	return leadRecords(t.store.SearchLeads(input.Query)), nil
}
