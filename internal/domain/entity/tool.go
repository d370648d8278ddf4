package entity

type ToolName string

const (
	ToolGetStudentCount    ToolName = "get_student_count"
	ToolFindStudent        ToolName = "find_student"
	ToolGetStudent         ToolName = "get_student"
	ToolSearchStudents     ToolName = "search_students"
	ToolListAtRiskStudents ToolName = "list_at_risk_students"
	ToolGetRevenue         ToolName = "get_revenue"
	ToolGetLeads           ToolName = "get_leads"
	ToolSearchLeads        ToolName = "search_leads"
)

func (t ToolName) String() string {
	return string(t)
}
