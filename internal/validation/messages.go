package validation

// Messages for structural failures.
const (
	MsgRequired = "is required"
	MsgString   = "must be a string"
	MsgInteger  = "must be an integer"
	MsgNumber   = "must be a number"
	MsgBoolean  = "must be a boolean"
	MsgDate     = "must be a date in YYYY-MM-DD format"
	MsgObject   = "must be an object"
	MsgEmail    = "must be a valid email address"
)
