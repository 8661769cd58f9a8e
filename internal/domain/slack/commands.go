package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdReport  CommandType = "report"
	CmdPreview CommandType = "preview"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{}
	switch strings.ToLower(parts[0]) {
	case "report", "post":
		cmd.Type = CmdReport
	case "preview", "show":
		cmd.Type = CmdPreview
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/attendance report`" + ` - Post this month's attendance ranking to the channel
• ` + "`/attendance preview`" + ` - Show this month's ranking only to you
• ` + "`/attendance help`" + ` - Show this help`
}
