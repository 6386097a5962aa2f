// Package llm provides the wire representations of chart-chat requests and
// responses which are then further mutated and handled.
package llm

import (
	"encoding/json"
	"fmt"
)

// Content is the closed set of message content shapes. A message carries
// either plain text or a base64 image reference, never both.
type Content interface {
	isContent()
}

// Text is plain message text. It marshals as a bare JSON string.
type Text string

func (Text) isContent() {}

// Image is a base64 image reference. It marshals as an image content block:
// {"type":"image","source":{"type":"base64",...}}.
type Image struct {
	MediaType string
	Data      string
}

func (Image) isContent() {}

// Message represents a single message in a conversation.
type Message struct {
	Role    string  // "system", "user", "assistant"
	Content Content // Text or Image
}

// imageEnvelope is the wire shape of an Image content block.
type imageEnvelope struct {
	Type   string      `json:"type"`
	Source imageSource `json:"source"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

// MarshalJSON encodes the message with its content union flattened to the
// wire shape.
func (m Message) MarshalJSON() ([]byte, error) {
	env := struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	}{Role: m.Role}

	switch c := m.Content.(type) {
	case Text:
		env.Content = string(c)
	case Image:
		env.Content = imageEnvelope{
			Type:   "image",
			Source: imageSource{Type: "base64", MediaType: c.MediaType, Data: c.Data},
		}
	case nil:
		env.Content = ""
	default:
		return nil, fmt.Errorf("unknown content type %T", m.Content)
	}

	return json.Marshal(env)
}

// UnmarshalJSON decodes a message, mapping a JSON string to Text and an
// image block object to Image.
func (m *Message) UnmarshalJSON(data []byte) error {
	var env struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	m.Role = env.Role

	if len(env.Content) == 0 || string(env.Content) == "null" {
		m.Content = Text("")
		return nil
	}

	if env.Content[0] == '"' {
		var s string
		if err := json.Unmarshal(env.Content, &s); err != nil {
			return err
		}
		m.Content = Text(s)
		return nil
	}

	var img imageEnvelope
	if err := json.Unmarshal(env.Content, &img); err != nil {
		return fmt.Errorf("decoding message content: %w", err)
	}
	if img.Type != "image" {
		return fmt.Errorf("unsupported content block type %q", img.Type)
	}
	m.Content = Image{MediaType: img.Source.MediaType, Data: img.Source.Data}
	return nil
}

// TextContent returns the message text, or "" when the content is an image.
func (m Message) TextContent() string {
	if t, ok := m.Content.(Text); ok {
		return string(t)
	}
	return ""
}
