package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

func TestDepth_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, analysis.DepthFast.Valid())
	assert.True(t, analysis.DepthStandard.Valid())
	assert.True(t, analysis.DepthDeep.Valid())
	assert.False(t, analysis.Depth("exhaustive").Valid())
	assert.False(t, analysis.Depth("").Valid())
}

func TestDepth_Budget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30*time.Second, analysis.DepthFast.Budget())
	assert.Equal(t, 60*time.Second, analysis.DepthStandard.Budget())
	assert.Equal(t, 90*time.Second, analysis.DepthDeep.Budget())
}

//Personal.AI order the ending
