package mysql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"singmeasong/recommendation/pkg/model"
)

func TestWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    *model.ScoreFilter
		wantWhere string
		wantArgs  []any
		wantErr   bool
	}{
		{name: "no filter"},
		{
			name:      "greater than",
			filter:    &model.ScoreFilter{Score: 10, Op: model.ScoreOpGreaterThan},
			wantWhere: " WHERE score > ?",
			wantArgs:  []any{10},
		},
		{
			name:      "less than or equal",
			filter:    &model.ScoreFilter{Score: 10, Op: model.ScoreOpLessThanOrEqual},
			wantWhere: " WHERE score <= ?",
			wantArgs:  []any{10},
		},
		{
			name:    "unsupported",
			filter:  &model.ScoreFilter{Score: 10, Op: "eq"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, err := whereClause(tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'song' for key 'name'"}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil"},
		{name: "duplicate entry", err: dup, want: true},
		{name: "wrapped duplicate entry", err: fmt.Errorf("insert: %w", dup), want: true},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}},
		{name: "other error", err: errors.New("connection refused")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateEntry(tt.err))
		})
	}
}
