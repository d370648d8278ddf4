package blocks

import (
	"fmt"
	"strings"

	"kai-assistant/internal/domain/entity"
)

type entityKind int

const (
	kindNone entityKind = iota
	kindStudent
	kindLead
)

// functionKinds is the exhaustive table of entity-returning tools. Names not
// listed here contribute no block; that is the intended fallback for tools
// that return scalars or for tools added before the mapper learns them.
var functionKinds = map[string]entityKind{
	entity.ToolSearchStudents.String():     kindStudent,
	entity.ToolGetStudent.String():         kindStudent,
	entity.ToolFindStudent.String():        kindStudent,
	entity.ToolListAtRiskStudents.String(): kindStudent,
	entity.ToolSearchLeads.String():        kindLead,
	entity.ToolGetLeads.String():           kindLead,
}

// FormatResults maps tool-call results to typed UI blocks. Pure and
// deterministic: the block variant is decided by (entity kind, cardinality),
// never by the function name alone. Entries map independently and in input
// order; two single-entity results stay two cards, never one list.
func FormatResults(results []entity.FunctionResult) entity.FormattedResponse {
	blocks := make([]entity.UIBlock, 0, len(results))
	var parts []string

	for _, fr := range results {
		kind := functionKinds[fr.Function]
		if kind == kindNone {
			if s := summarize(fr); s != "" {
				parts = append(parts, s)
			}
			continue
		}

		records := normalize(fr.Result)
		switch {
		case len(records) == 0:
			// absence of data is a valid, silent outcome
		case len(records) == 1:
			blocks = append(blocks, cardBlock(kind, records[0]))
		default:
			blocks = append(blocks, listBlock(kind, records))
		}
	}

	return entity.FormattedResponse{
		Text:   strings.Join(parts, " "),
		Blocks: blocks,
	}
}

// normalize flattens the heterogeneous result shapes into a slice of
// records: nil stays empty, a bare object becomes a one-element slice.
func normalize(result any) []map[string]any {
	switch v := result.(type) {
	case nil:
		return nil
	case map[string]any:
		return []map[string]any{v}
	case []map[string]any:
		return v
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, rec)
			}
		}
		return records
	default:
		return nil
	}
}

func cardBlock(kind entityKind, rec map[string]any) entity.UIBlock {
	block := entity.UIBlock{Label: displayName(rec)}
	id := recordID(rec)
	if kind == kindLead {
		block.Type = entity.BlockLeadCard
		block.LeadID = id
	} else {
		block.Type = entity.BlockStudentCard
		block.StudentID = id
	}
	return block
}

func listBlock(kind entityKind, records []map[string]any) entity.UIBlock {
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, recordID(rec))
	}
	if kind == kindLead {
		return entity.UIBlock{
			Type:    entity.BlockLeadList,
			LeadIDs: ids,
			Label:   fmt.Sprintf("%d leads", len(ids)),
		}
	}
	return entity.UIBlock{
		Type:       entity.BlockStudentList,
		StudentIDs: ids,
		Label:      fmt.Sprintf("%d students", len(ids)),
	}
}

func recordID(rec map[string]any) int64 {
	switch v := rec["id"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

func displayName(rec map[string]any) string {
	first, _ := rec["firstName"].(string)
	last, _ := rec["lastName"].(string)
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		name, _ = rec["name"].(string)
	}
	return name
}

// summarize produces a one-sentence text for scalar-returning tools. Blocks
// and text are complementary; entity results need no restating here.
func summarize(fr entity.FunctionResult) string {
	rec, ok := fr.Result.(map[string]any)
	if !ok {
		return ""
	}
	switch fr.Function {
	case entity.ToolGetStudentCount.String():
		if n, ok := numberField(rec, "count"); ok {
			return fmt.Sprintf("You currently have %d active students.", int64(n))
		}
	case entity.ToolGetRevenue.String():
		if total, ok := numberField(rec, "total"); ok {
			if period, _ := rec["period"].(string); period != "" {
				return fmt.Sprintf("Revenue for %s: $%.2f.", period, total)
			}
			return fmt.Sprintf("Total revenue: $%.2f.", total)
		}
	}
	return ""
}

func numberField(rec map[string]any, key string) (float64, bool) {
	switch v := rec[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
