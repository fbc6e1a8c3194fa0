package domain

type ClientMessage struct {
	Type   string `json:"type"`
	Board  *Board `json:"board"`
	Mark   int    `json:"mark,omitempty"`
	Player int    `json:"player,omitempty"`
	Depth  *int   `json:"depth,omitempty"`
}

type ServerMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Column  int    `json:"column"`
	Found   bool   `json:"found"`
}

const (
	MessageHint  = "hint"
	MessageError = "error"
)
