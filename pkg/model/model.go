package model

// Contact is the JSON view of a contact. Birthday uses the DD.MM.YYYY format. Birthday and
// DaysToBirthday are omitted if the contact has no birthday.
type Contact struct {
	Name           string   `json:"name"`
	Phones         []string `json:"phones"`
	Birthday       *string  `json:"birthday,omitempty"`
	DaysToBirthday *int     `json:"daysToBirthday,omitempty"`
}

// CommandRequest carries one input line, exactly as it would be typed at the prompt.
type CommandRequest struct {
	Line string `json:"line"`
}

// CommandResponse is the assistant's reply to a CommandRequest. Quit is true after close or exit.
type CommandResponse struct {
	Reply string `json:"reply"`
	Quit  bool   `json:"quit"`
}
