package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    CommandType
		wantErr bool
	}{
		{name: "Should default to help on empty text", text: "  ", want: CmdHelp},
		{name: "Should parse report", text: "report", want: CmdReport},
		{name: "Should parse post alias", text: "post", want: CmdReport},
		{name: "Should parse preview case insensitively", text: "Preview", want: CmdPreview},
		{name: "Should parse show alias", text: "show now", want: CmdPreview},
		{name: "Should parse help", text: "help", want: CmdHelp},
		{name: "Should fail on unknown command", text: "rotate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.text)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Type)
		})
	}
}
