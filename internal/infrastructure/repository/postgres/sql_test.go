package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/hemanthramakumar9999/scalable-modern-datastack-architecture/internal/domain/store"
)

func TestMapStoreError_Classification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pq.Error{Code: pqUniqueViolation}, store.ErrDuplicateKey},
		{"foreign key violation", &pq.Error{Code: pqForeignKeyViolation}, store.ErrForeignKeyMissing},
		{"check violation", &pq.Error{Code: pqCheckViolation}, store.ErrForeignKeyMissing},
		{"wrapped unique violation", fmt.Errorf("exec: %w", &pq.Error{Code: pqUniqueViolation}), store.ErrDuplicateKey},
		{"driver failure", errors.New("connection reset"), store.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapStoreError(tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("mapStoreError(%v) = %v, want marked with %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestMapStoreError_Nil(t *testing.T) {
	if err := mapStoreError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
