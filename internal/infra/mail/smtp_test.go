package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMIMEPlainText(t *testing.T) {
	body, contentType, err := buildMIME(Message{Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Contains(t, contentType, "text/plain")
}

func TestBuildMIMEWithAttachment(t *testing.T) {
	msg := Message{
		Body:           "quotation attached",
		Attachment:     []byte("%PDF-1.4 fake"),
		AttachmentName: "Century_Cleaning_Quotation.pdf",
	}
	body, contentType, err := buildMIME(msg)
	require.NoError(t, err)

	assert.Contains(t, contentType, "multipart/mixed")
	s := string(body)
	assert.Contains(t, s, "quotation attached")
	assert.Contains(t, s, `filename="Century_Cleaning_Quotation.pdf"`)
	assert.Contains(t, s, "Content-Transfer-Encoding: base64")
	// The raw PDF bytes must not appear unencoded.
	assert.False(t, strings.Contains(s, "%PDF-1.4 fake"))
}
