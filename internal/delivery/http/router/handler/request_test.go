package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"number", `7`, 7, false},
		{"numeric string", `"7"`, 7, false},
		{"padded string", `" 8 "`, 8, false},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"letters", `"abc"`, 0, true},
		{"fraction", `1.5`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexibleID
			err := json.Unmarshal([]byte(tt.input), &id)

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Int64())
		})
	}
}

func TestCompactJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  json.RawMessage
		want   string
		wantOK bool
	}{
		{"object", json.RawMessage(`{ "name" : "Ann", "zip": "10001" }`), `{"name":"Ann","zip":"10001"}`, true},
		{"string", json.RawMessage(`"card"`), `"card"`, true},
		{"null", json.RawMessage(`null`), "", false},
		{"absent", nil, "", false},
		{"empty string", json.RawMessage(`""`), "", false},
		{"empty object", json.RawMessage(`{ }`), "", false},
		{"empty array", json.RawMessage(`[]`), "", false},
		{"zero", json.RawMessage(`0`), "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := compactJSON(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
