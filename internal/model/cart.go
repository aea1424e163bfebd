package model

// CartLine is a pending rental selection: a listing identifier and the number
// of days the user intends to rent it for. A cart holds at most one line per
// tool; re-adding a tool accumulates onto the existing line. Lines reference
// listings by ID only and never copy listing fields, so price edits in the
// catalog are reflected live in cart totals until checkout.
type CartLine struct {
	ToolID string `json:"tool_id"`
	Days   int    `json:"days"`
}
