package llm

import "encoding/json"

// GraphRequest represents an incoming chart-chat request.
// Messages stays raw so the handler can distinguish a missing or non-array
// field (a client validation failure) from a malformed element (an internal
// failure).
type GraphRequest struct {
	Messages json.RawMessage `json:"messages"`
	FileData *FileAttachment `json:"fileData,omitempty"`
	Model    string          `json:"model"`
}

// HasMessagesArray reports whether the messages field is present and is a
// JSON array.
func (r *GraphRequest) HasMessagesArray() bool {
	raw := r.Messages
	return len(raw) > 0 && string(raw) != "null" && raw[0] == '['
}

// ParseMessages decodes the raw messages field.
func (r *GraphRequest) ParseMessages() ([]Message, error) {
	var messages []Message
	if err := json.Unmarshal(r.Messages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// FileAttachment is a single file supplied alongside a request. It is never
// persisted - it is merged into the transcript and discarded.
type FileAttachment struct {
	Base64    string `json:"base64"`
	MediaType string `json:"mediaType"`
	IsText    bool   `json:"isText"`
	FileName  string `json:"fileName"`
}
