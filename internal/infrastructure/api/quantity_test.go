package api

import (
	"encoding/json"
	"testing"
)

func TestFlexQtyUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    flexQty
		wantErr bool
	}{
		{name: "integer", in: `7`, want: 7},
		{name: "float truncates", in: `3.9`, want: 3},
		{name: "numeric string", in: `"12"`, want: 12},
		{name: "padded numeric string", in: `" 12 "`, want: 12},
		{name: "negative string", in: `"-4"`, want: -4},
		{name: "placeholder", in: `"—"`, want: 0},
		{name: "arbitrary text", in: `"n/a"`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "object", in: `{}`, wantErr: true},
		{name: "array", in: `[1]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var q flexQty
			err := json.Unmarshal([]byte(tc.in), &q)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s): want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if q != tc.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tc.in, q, tc.want)
			}
		})
	}
}
