package domain

// Result reports the outcome of a reconciliation.
// Field names follow the module return contract so the struct can be encoded directly.
type Result struct {
	Changed          bool     `json:"changed"            yaml:"changed"`
	Msg              string   `json:"msg"                yaml:"msg"`
	InitialLockList  LockList `json:"initial_locklist"   yaml:"initial_locklist"`
	FinalLockList    LockList `json:"final_locklist"     yaml:"final_locklist"`
	PatternsToAdd    []string `json:"patterns_to_add"    yaml:"patterns_to_add"`
	PatternsToDelete []string `json:"patterns_to_delete" yaml:"patterns_to_delete"`
	InitialDigest    string   `json:"initial_digest"     yaml:"initial_digest"`
	FinalDigest      string   `json:"final_digest"       yaml:"final_digest"`
}

// NewResult returns a Result with every list initialized, so encoders emit
// empty arrays rather than null.
func NewResult(initial LockList) *Result {
	initial = initial.Clone()
	return &Result{
		InitialLockList:  initial,
		FinalLockList:    initial.Clone(),
		PatternsToAdd:    []string{},
		PatternsToDelete: []string{},
		InitialDigest:    initial.Digest(),
		FinalDigest:      initial.Digest(),
	}
}

// SetFinal records the lock list observed after the mutation.
func (r *Result) SetFinal(final LockList) {
	r.FinalLockList = final.Clone()
	r.FinalDigest = r.FinalLockList.Digest()
}

// Failure is the module protocol's report for an aborted run.
type Failure struct {
	Failed bool   `json:"failed"`
	Msg    string `json:"msg"`
}
