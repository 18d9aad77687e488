package planner

// Entry is one proposed rename within a plan.
type Entry struct {
	// Old is the current filename
	Old string `json:"old"`

	// New is the proposed filename
	New string `json:"new"`
}

// Plan is the proposed set of renames for one rule, prior to any
// filesystem mutation. Entry order is the order filenames were observed
// in the directory snapshot. A plan never maps a name to itself.
type Plan struct {
	// Entries is the ordered list of proposed renames
	Entries []Entry `json:"entries"`

	// Notices is a list of human-readable skip notices gathered during
	// planning (empty if nothing was skipped)
	Notices []string `json:"notices,omitempty"`
}

// NewPlan creates a new empty Plan.
func NewPlan() *Plan {
	return &Plan{
		Entries: []Entry{},
		Notices: []string{},
	}
}

// Add appends a proposed rename to the plan.
func (p *Plan) Add(old, new string) {
	p.Entries = append(p.Entries, Entry{Old: old, New: new})
}

// AddNotice appends a skip notice to the plan.
func (p *Plan) AddNotice(notice string) {
	p.Notices = append(p.Notices, notice)
}

// Empty returns true if the plan proposes no renames.
func (p *Plan) Empty() bool {
	return len(p.Entries) == 0
}

// Len returns the number of proposed renames.
func (p *Plan) Len() int {
	return len(p.Entries)
}
