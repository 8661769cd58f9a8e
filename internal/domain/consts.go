package domain

// DefaultAttendanceReaction is the emoji name that marks a check-in
const DefaultAttendanceReaction = "出勤_syukkin"

// Report titles and invocation result messages
const (
	ReportTitle = "*今月の出勤数ランキング*"

	MessageSuccess      = "Success!"
	MessageNoAttendance = "No attendance."
	MessageSecretError  = "Error getting secret."
)

// Slack API page sizes
const (
	HistoryPageSize = 200
	MembersPageSize = 1000
)
