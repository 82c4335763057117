package remote

import (
	"errors"
	"testing"

	"github.com/villapro/villapro/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error // sentinel to match with errors.Is, nil = TransportError
	}{
		{
			name: "missing table via PGRST code",
			err:  errors.New(`(PGRST205) Could not find the table 'public.villas' in the schema cache`),
			want: domain.ErrSchemaMissing,
		},
		{
			name: "missing table via postgres code",
			err:  errors.New(`(42P01) relation "public.villas" does not exist`),
			want: domain.ErrSchemaMissing,
		},
		{
			name: "zero-row single result",
			err:  errors.New(`(PGRST116) JSON object requested, multiple (or no) rows returned`),
			want: domain.ErrNotFound,
		},
		{
			name: "anything else is transport",
			err:  errors.New("dial tcp: connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("test op", tt.err)
			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Errorf("classify() = %v, want %v", got, tt.want)
				}
				return
			}
			var te *domain.TransportError
			if !errors.As(got, &te) {
				t.Errorf("classify() = %T, want *domain.TransportError", got)
			}
			// The provider message is preserved verbatim for the user.
			if te != nil && !errors.Is(te, tt.err) {
				t.Errorf("TransportError should wrap the original error, got %v", te)
			}
		})
	}
}
