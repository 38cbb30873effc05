package domain

// Result is the outcome of processing a single CIDR input: either a parsed
// subnet or the error that rejected it.
type Result struct {
	Input  string
	Subnet *Subnet
	Err    error
}

// Report collects results for a batch of inputs, preserving input order
type Report struct {
	Results []Result
}

// NewReport creates a new empty report
func NewReport() *Report {
	return &Report{
		Results: make([]Result, 0),
	}
}

// Add appends one result to the report
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// OKCount returns the number of successfully processed inputs
func (r *Report) OKCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

// FailCount returns the number of rejected inputs
func (r *Report) FailCount() int {
	return len(r.Results) - r.OKCount()
}

// TotalCount returns the total number of inputs processed
func (r *Report) TotalCount() int {
	return len(r.Results)
}
