package standings

const (
	PointsWin  = 3
	PointsDraw = 1
)

// Row is one player's derived record within a scope.
type Row struct {
	Rank           int
	Player         string
	Matches        int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Efficiency     float64
}

// Table is a ranking plus the per-player index into it.
type Table struct {
	Rows  []Row
	index map[string]int
}

// Get returns the row for name.
func (t Table) Get(name string) (Row, bool) {
	i, ok := t.index[name]
	if !ok {
		return Row{}, false
	}
	return t.Rows[i], true
}

// Leader returns the first ranked row.
func (t Table) Leader() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[0], true
}
