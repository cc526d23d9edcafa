package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestEmailSender_BuildMsg(t *testing.T) {
	t.Parallel()

	e, err := NewEmailSender(
		"smtp.example.com", 587,
		"tracker", "secret", "alerts@example.com",
	)
	require.NoError(t, err)

	m, err := e.buildMsg("user@example.com", Message{
		Subject: "Product Tracking Confirmed",
		Body:    "Now tracking Apple iPhone 15",
		HTML:    "<html><body>Now tracking</body></html>",
	})
	require.NoError(t, err)
	require.NotNil(t, m)

	to := m.GetToString()
	require.Len(t, to, 1)
	assert.Contains(t, to[0], "user@example.com")
}

func TestEmailSender_BuildMsg_InvalidRecipient(t *testing.T) {
	t.Parallel()

	e, err := NewEmailSender(
		"smtp.example.com", 587,
		"tracker", "secret", "alerts@example.com",
	)
	require.NoError(t, err)

	_, err = e.buildMsg("not-an-address", Message{Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient address")
}

func TestEmailSender_BuildMsg_InvalidSender(t *testing.T) {
	t.Parallel()

	e, err := NewEmailSender(
		"smtp.example.com", 587,
		"tracker", "secret", "bogus",
		WithMailClient(&mail.Client{}),
	)
	require.NoError(t, err)

	_, err = e.buildMsg("user@example.com", Message{Subject: "x", Body: "y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sender address")
}
