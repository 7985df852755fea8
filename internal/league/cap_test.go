package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCapSummary(t *testing.T) {
	ledger := NewLedger(100)

	tests := []struct {
		name       string
		teamID     int
		cutoff     int
		contracts  []ContractRecord
		retentions []RetentionRecord
		want       CapSummary
	}{
		{
			name:   "no rows yields zeroes and full cap",
			teamID: 1,
			cutoff: 2025,
			want:   CapSummary{TeamID: 1, TotalSalary: 0, DeadMoney: 0, CapSpace: 100},
		},
		{
			name:   "pending release excluded regardless of salary",
			teamID: 1,
			cutoff: 2025,
			contracts: []ContractRecord{
				{TeamID: 1, Salary: 40, Status: "PR", EndYear: 2030},
				{TeamID: 1, Salary: 10, Status: "", EndYear: 2030},
			},
			want: CapSummary{TeamID: 1, TotalSalary: 10, DeadMoney: 0, CapSpace: 90},
		},
		{
			name:   "expired contracts excluded at cutoff boundary",
			teamID: 1,
			cutoff: 2025,
			contracts: []ContractRecord{
				{TeamID: 1, Salary: 20, EndYear: 2025}, // end_year must be strictly greater
				{TeamID: 1, Salary: 15, EndYear: 2026},
			},
			want: CapSummary{TeamID: 1, TotalSalary: 15, DeadMoney: 0, CapSpace: 85},
		},
		{
			name:   "other teams' rows ignored",
			teamID: 1,
			cutoff: 2025,
			contracts: []ContractRecord{
				{TeamID: 2, Salary: 50, EndYear: 2030},
				{TeamID: 1, Salary: 12.5, EndYear: 2030},
			},
			retentions: []RetentionRecord{
				{TeamID: 2, RetainedSalary: 9},
				{TeamID: 1, RetainedSalary: 3.25},
			},
			want: CapSummary{TeamID: 1, TotalSalary: 12.5, DeadMoney: 3.25, CapSpace: 84.25},
		},
		{
			name:   "over the cap stays negative",
			teamID: 7,
			cutoff: 2025,
			contracts: []ContractRecord{
				{TeamID: 7, Salary: 95, EndYear: 2027},
			},
			retentions: []RetentionRecord{
				{TeamID: 7, RetainedSalary: 10},
			},
			want: CapSummary{TeamID: 7, TotalSalary: 95, DeadMoney: 10, CapSpace: -5},
		},
		{
			name:   "multiple retention rows accumulate",
			teamID: 3,
			cutoff: 2025,
			retentions: []RetentionRecord{
				{TeamID: 3, RetainedSalary: 1.5},
				{TeamID: 3, RetainedSalary: 2.25},
			},
			want: CapSummary{TeamID: 3, TotalSalary: 0, DeadMoney: 3.75, CapSpace: 96.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ComputeCapSummary(tt.teamID, tt.cutoff, tt.contracts, tt.retentions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeCapSummaryInvariant(t *testing.T) {
	// cap_space == CAP_LIMIT - total_salary - dead_money, to 2 decimals,
	// including awkward float sums.
	ledger := NewLedger(100)
	contracts := []ContractRecord{
		{TeamID: 1, Salary: 0.1, EndYear: 2030},
		{TeamID: 1, Salary: 0.2, EndYear: 2030},
		{TeamID: 1, Salary: 33.33, EndYear: 2030},
	}
	retentions := []RetentionRecord{{TeamID: 1, RetainedSalary: 0.3}}

	got := ledger.ComputeCapSummary(1, 2025, contracts, retentions)
	assert.Equal(t, 33.63, got.TotalSalary)
	assert.Equal(t, 0.3, got.DeadMoney)
	assert.Equal(t, Round2(100-got.TotalSalary-got.DeadMoney), got.CapSpace)
}

func TestNewLedgerDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultCapLimit), NewLedger(0).CapLimit)
	assert.Equal(t, 120.0, NewLedger(120).CapLimit)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, MoneyPlaceholder, FormatMoney(0))
	assert.Equal(t, "$12.50", FormatMoney(12.5))
	assert.Equal(t, "$-5.00", FormatMoney(-5))
}

func TestCoalesceZero(t *testing.T) {
	assert.Equal(t, 0.0, CoalesceZero(nil))
	v := 4.5
	assert.Equal(t, 4.5, CoalesceZero(&v))
}
