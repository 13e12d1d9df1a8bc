package cert

import "github.com/pkg/errors"

// LogSolution emits a feasible solution's literals and the conclusion
// lines that bind the proof's final id. primal holds, for each
// column in names' order, 1 or 0.
func (e *activeEngine) LogSolution(primal []int, names []string) error {
	if len(primal) != len(names) {
		panic("cert: LogSolution requires one primal value per name")
	}
	lits := make([]string, len(names))
	for i, v := range primal {
		switch v {
		case 1:
			lits[i] = names[i]
		case 0:
			lits[i] = "~" + names[i]
		default:
			return errors.Errorf("cert: LogSolution value for %q must be 0 or 1, got %d", names[i], v)
		}
	}
	e.reg.allocate()
	if err := e.fmt.output(lits); err != nil {
		return err
	}
	concludeID := e.reg.allocate()
	return e.fmt.conclude(concludeID)
}
