package model

// GenerateRequest represents a password generation request.
// Classes holds class names ("lower", "upper", "digits", "symbols") in the
// order they were selected.
type GenerateRequest struct {
	Length  int      `json:"length"`
	Classes []string `json:"classes"`
}

// GenerateResponse represents a generated password and its strength.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Variety  int    `json:"variety"`
	Strength string `json:"strength"`
	Level    string `json:"level"`
}
