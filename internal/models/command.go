package models

// Action is a recognized command intent.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionUpdate Action = "update"
	ActionCheck  Action = "check"
	ActionList   Action = "list"
)

// Parser confidence levels: structured pattern matches are fully trusted,
// flexible fallback matches are flagged for downstream consumers.
const (
	ConfidenceStructured = 1.0
	ConfidenceFlexible   = 0.7
)

// ParsedCommand is the in-memory result of interpreting an utterance.
// It is never persisted.
type ParsedCommand struct {
	Action     Action  `json:"action"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	RawText    string  `json:"raw_text"`
	Confidence float64 `json:"confidence"`
}

// CommandResult is the uniform envelope the dispatcher returns for every
// executed command, success or not.
type CommandResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
