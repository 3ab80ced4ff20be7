package serverutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestPaginatedResponseNeverNullData(t *testing.T) {
	res := NewPaginatedResponse[string]("ok", nil, 0, 2, 10)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, 2, res.CurrentPage)
	assert.Equal(t, 0, res.TotalPages)
}

func TestSuccessEnvelopeKeys(t *testing.T) {
	keys := func(v interface{}) []string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		var m map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &m))
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"success", "message", "data"}, keys(SuccessResponse("ok", 1)))
	assert.ElementsMatch(t, []string{"success", "data"}, keys(CreatedResponse("", 1)))
	assert.ElementsMatch(t, []string{"success", "message", "data", "count", "totalPages", "currentPage"},
		keys(NewPaginatedResponse("ok", []int{1}, 1, 1, 10)))
}
