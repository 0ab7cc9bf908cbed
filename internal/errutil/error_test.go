package errutil

import (
	"testing"

	"github.com/pkg/errors"
)

func TestInternalError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		want    bool
		wantMsg string
	}{
		{
			name:    "wrap しても errors.Is で判定できる",
			err:     errors.Wrap(ErrTimeParse, "unrecognized date"),
			target:  ErrTimeParse,
			want:    true,
			wantMsg: "unrecognized date: time parse error",
		},
		{
			name:    "別の error とは一致しない",
			err:     errors.Wrap(ErrTimeParse, "unrecognized date"),
			target:  ErrLocationLoad,
			want:    false,
			wantMsg: "unrecognized date: time parse error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}
