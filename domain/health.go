package domain

var (
	MessageDatabaseReachable   = "database reachable"
	MessageDatabaseUnreachable = "database unreachable"
	MessageDatabaseUnchecked   = "database check pending"
)
