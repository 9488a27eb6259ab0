package data

// Selection addresses one chapter of one translation.
type Selection struct {
	Version string `json:"version"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}
