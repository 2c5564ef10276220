package clipboard

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		in      []byte
		want    string
		wantErr error
	}{
		{[]byte("hello"), "hello", nil},
		{[]byte("hello\x00"), "hello", nil},
		{[]byte("\x00"), "", ErrEmpty},
		{nil, "", ErrEmpty},
	}
	for _, tt := range tests {
		got, err := decodeText(tt.in)
		if !errors.Is(err, tt.wantErr) || got != tt.want {
			t.Errorf("decodeText(%q) = %q, %v; want %q, %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
