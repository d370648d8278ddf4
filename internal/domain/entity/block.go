package entity

// BlockType discriminates the closed set of renderable UI block variants.
type BlockType string

const (
	BlockStudentCard BlockType = "student_card"
	BlockStudentList BlockType = "student_list"
	BlockLeadCard    BlockType = "lead_card"
	BlockLeadList    BlockType = "lead_list"
)

// UIBlock is one renderable unit: a single entity card or an entity list.
// Exactly one of the id fields is populated, matching Type.
type UIBlock struct {
	Type       BlockType `json:"type"`
	StudentID  int64     `json:"studentId,omitempty"`
	StudentIDs []int64   `json:"studentIds,omitempty"`
	LeadID     int64     `json:"leadId,omitempty"`
	LeadIDs    []int64   `json:"leadIds,omitempty"`
	Label      string    `json:"label"`
}

// FunctionResult is the outcome of executing one tool call against the CRM
// data layer. Result holds decoded JSON: a single object, a slice (possibly
// empty), or nil.
type FunctionResult struct {
	Function string `json:"function"`
	Result   any    `json:"result"`
}

// FormattedResponse pairs a short text summary with zero or more UI blocks.
// Text and blocks are complementary; either renders on its own.
type FormattedResponse struct {
	Text   string    `json:"text"`
	Blocks []UIBlock `json:"ui_blocks"`
}
