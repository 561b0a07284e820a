package chat

import (
	"strings"
	"time"
)

// Message is an immutable log entry between two users. ID and CreatedAt are
// store-assigned on insert; history ordering is CreatedAt ascending.
type Message struct {
	ID             string    `db:"id"`
	SenderMobile   string    `db:"sender_mobile"`
	ReceiverMobile string    `db:"receiver_mobile"`
	Content        string    `db:"content"`
	FileName       *string   `db:"file_name"`
	FileData       *string   `db:"file_data"` // base64 payload; nil unless IsFile
	IsFile         bool      `db:"is_file"`
	CreatedAt      time.Time `db:"created_at"`
}

// NewTextMessage validates a plain text message between two users.
func NewTextMessage(sender, receiver, content string) (*Message, error) {
	sender = strings.TrimSpace(sender)
	receiver = strings.TrimSpace(receiver)
	if sender == "" || receiver == "" {
		return nil, ErrEmptyMobile
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		SenderMobile:   sender,
		ReceiverMobile: receiver,
		Content:        content,
	}, nil
}

// NewFileMessage validates a file attachment message. The content is a display
// label derived from the file name; name and base64 payload are stored verbatim.
// No size limit is enforced here, so large payloads inflate the stored row.
func NewFileMessage(sender, receiver, fileName, fileData string) (*Message, error) {
	sender = strings.TrimSpace(sender)
	receiver = strings.TrimSpace(receiver)
	if sender == "" || receiver == "" {
		return nil, ErrEmptyMobile
	}
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, ErrEmptyFileName
	}
	return &Message{
		SenderMobile:   sender,
		ReceiverMobile: receiver,
		Content:        FileContentLabel(fileName),
		FileName:       &fileName,
		FileData:       &fileData,
		IsFile:         true,
	}, nil
}

// FileContentLabel builds the display content for a file message.
func FileContentLabel(fileName string) string {
	return "\U0001F4CE " + fileName
}
