package llm

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrNoFileData is returned when an attachment carries no base64 payload.
var ErrNoFileData = errors.New("no file data")

// AttachFile merges a file attachment into the last message of the
// transcript. Text files are decoded and prepended to the last message's
// text; images replace the last message's content with an image block.
// Attachments that are neither text nor images are ignored.
func AttachFile(messages []Message, file *FileAttachment) error {
	if file.Base64 == "" {
		return ErrNoFileData
	}
	if len(messages) == 0 {
		return fmt.Errorf("no message to attach file %q to", file.FileName)
	}

	last := &messages[len(messages)-1]

	switch {
	case file.IsText:
		decoded, err := base64.StdEncoding.DecodeString(file.Base64)
		if err != nil {
			return fmt.Errorf("decoding file %q: %w", file.FileName, err)
		}
		last.Content = Text(fmt.Sprintf("File contents of %s:\n\n%s\n\n%s",
			file.FileName, decoded, last.TextContent()))

	case strings.HasPrefix(file.MediaType, "image/"):
		last.Content = Image{MediaType: file.MediaType, Data: file.Base64}
	}

	return nil
}
