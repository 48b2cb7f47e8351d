package scenario

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

type StepResult struct {
	Index   int
	Op      string
	Value   Value
	Checked bool
	Passed  bool
	Want    Value
}

func (s StepResult) String() string {
	var status string
	switch {
	case !s.Checked:
		status = "    "
	case s.Passed:
		status = "ok  "
	default:
		status = "FAIL"
	}
	line := fmt.Sprintf("%s %3d %-12s %s", status, s.Index, s.Op, s.Value)
	if s.Checked && !s.Passed {
		line += fmt.Sprintf(" (want %s)", s.Want)
	}
	return line
}

type Report struct {
	ID       uuid.UUID
	Scenario string
	Source   string
	Results  []StepResult
	Passed   int
	Failed   int
	Duration time.Duration
}

func (r *Report) add(res StepResult) {
	r.Results = append(r.Results, res)
	if !res.Checked {
		return
	}
	if res.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every checked step passed.
func (r *Report) OK() bool { return r.Failed == 0 }

func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s", r.Scenario)
	if r.Source != "" {
		fmt.Fprintf(&b, " (%s)", r.Source)
	}
	fmt.Fprintf(&b, " run %s\n", r.ID)
	for _, res := range r.Results {
		b.WriteString(res.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "passed %d, failed %d, %d steps in %s\n", r.Passed, r.Failed, len(r.Results), r.Duration)

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
