package data

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatPart struct {
	Text string `json:"text"`
}

// ChatMessage is one role-tagged conversation turn.
type ChatMessage struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// JoinedText returns the text of every part separated by a space.
func (m ChatMessage) JoinedText() string {
	text := ""
	for i, p := range m.Parts {
		if i > 0 {
			text += " "
		}
		text += p.Text
	}
	return text
}

type GeneratedText struct {
	Text string `json:"text"`
}

type StreamedText struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Message string `json:"message"`
}

// Commentary is generated text tagged with the chapter that produced it.
type Commentary struct {
	Version string `json:"version"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Text    string `json:"text"`
}
