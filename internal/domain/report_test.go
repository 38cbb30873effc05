package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCounts(t *testing.T) {
	report := NewReport()
	assert.Equal(t, 0, report.TotalCount())

	sub, err := ParseSubnet("10.0.0.0/24")
	require.NoError(t, err)

	report.Add(Result{Input: "10.0.0.0/24", Subnet: sub})
	report.Add(Result{Input: "bogus", Err: ErrMalformedCIDR})
	report.Add(Result{Input: "10.0.1.0/24", Subnet: sub})

	assert.Equal(t, 3, report.TotalCount())
	assert.Equal(t, 2, report.OKCount())
	assert.Equal(t, 1, report.FailCount())
	assert.Equal(t, "bogus", report.Results[1].Input)
}
