package vrp_test

import (
	"testing"

	"github.com/katalvlaran/vrptabu/vrp"
	"github.com/stretchr/testify/require"
)

// TestTabuList_NormalizesOrder confirms (i,j) and (j,i) are equivalent.
func TestTabuList_NormalizesOrder(t *testing.T) {
	tabu := vrp.NewTabuList(5)
	tabu.Insert(vrp.Pair{I: 3, J: 1})
	require.True(t, tabu.Contains(vrp.Pair{I: 1, J: 3}))
	require.True(t, tabu.Contains(vrp.Pair{I: 3, J: 1}))
}

// TestTabuList_TrimsToMaxLen confirms the oldest entries are evicted
// once the list exceeds its maximum length.
func TestTabuList_TrimsToMaxLen(t *testing.T) {
	tabu := vrp.NewTabuList(2)
	tabu.Insert(vrp.Pair{I: 0, J: 1})
	tabu.Insert(vrp.Pair{I: 1, J: 2})
	tabu.Insert(vrp.Pair{I: 2, J: 3})

	require.Equal(t, 2, tabu.Len())
	require.False(t, tabu.Contains(vrp.Pair{I: 0, J: 1}))
	require.True(t, tabu.Contains(vrp.Pair{I: 2, J: 3}))
}

// TestTabuList_SetMaxLenTrimsImmediately confirms shrinking the bound
// evicts the oldest entries right away, not on the next insert.
func TestTabuList_SetMaxLenTrimsImmediately(t *testing.T) {
	tabu := vrp.NewTabuList(5)
	tabu.Insert(vrp.Pair{I: 0, J: 1})
	tabu.Insert(vrp.Pair{I: 1, J: 2})
	tabu.Insert(vrp.Pair{I: 2, J: 3})

	tabu.SetMaxLen(1)
	require.Equal(t, 1, tabu.Len())
	require.True(t, tabu.Contains(vrp.Pair{I: 2, J: 3}))
}
