package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    State
		wantErr error
	}{
		{name: "empty defaults to all", input: "", want: StateAll},
		{name: "uppercase", input: "PAST", want: StatePast},
		{name: "lowercase", input: "current", want: StateCurrent},
		{name: "mixed case", input: "Waiting", want: StateWaiting},
		{name: "rejected", input: "REJECTED", want: StateRejected},
		{name: "future", input: "FUTURE", want: StateFuture},
		{name: "unknown", input: "FINISHED", wantErr: ErrUnsupportedState},
		{name: "garbage", input: "???", wantErr: ErrUnsupportedState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseState(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatePredicate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		state   State
		wantSQL string
	}{
		{StatePast, "b.end_time < ?"},
		{StateFuture, "b.start_time > ?"},
		{StateCurrent, "(b.start_time < ? AND b.end_time > ?)"},
		{StateWaiting, "b.status = ?"},
		{StateRejected, "b.status = ?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			pred := tt.state.predicate(now)
			require.NotNil(t, pred)

			sql, _, err := pred.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
		})
	}

	t.Run("ALL has no predicate", func(t *testing.T) {
		assert.Nil(t, StateAll.predicate(now))
	})
}

func TestRoleSubjectColumn(t *testing.T) {
	assert.Equal(t, "b.booker_id", RoleBooker.subjectColumn())
	assert.Equal(t, "i.owner_id", RoleOwner.subjectColumn())
}
