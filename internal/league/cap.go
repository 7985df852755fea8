package league

import "math"

// DefaultCapLimit is the league's salary ceiling. Unit-less; the league
// plays with a $100 cap.
const DefaultCapLimit = 100

// Ledger computes cap positions against a configured salary ceiling.
type Ledger struct {
	CapLimit float64
}

// NewLedger creates a Ledger. A zero or negative limit falls back to the
// league default.
func NewLedger(capLimit float64) Ledger {
	if capLimit <= 0 {
		capLimit = DefaultCapLimit
	}
	return Ledger{CapLimit: capLimit}
}

// ComputeCapSummary computes a team's cap position for a given cutoff year.
//
// A contract counts toward total salary iff it belongs to the team, its
// status does not carry the pending-release tag, and its end year is after
// the cutoff. Rows failing either condition are excluded entirely, not
// zeroed. Dead money is the sum of retained salary the team still owes.
// Absent data yields zeroes, never an error; a negative cap space means the
// team is over the cap and is preserved as-is.
func (l Ledger) ComputeCapSummary(teamID, cutoffYear int, contracts []ContractRecord, retentions []RetentionRecord) CapSummary {
	var totalSalary float64
	for _, c := range contracts {
		if c.TeamID != teamID {
			continue
		}
		if c.HasTag(StatusPendingRelease) {
			continue
		}
		if c.EndYear <= cutoffYear {
			continue
		}
		totalSalary += c.Salary
	}

	var deadMoney float64
	for _, r := range retentions {
		if r.TeamID != teamID {
			continue
		}
		deadMoney += r.RetainedSalary
	}

	return CapSummary{
		TeamID:      teamID,
		TotalSalary: Round2(totalSalary),
		DeadMoney:   Round2(deadMoney),
		CapSpace:    Round2(l.CapLimit - (totalSalary + deadMoney)),
	}
}

// Round2 rounds to two decimal places, the ledger's money precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
