package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSMTPClient struct {
	from     string
	rcpts    []string
	data     bytes.Buffer
	quit     bool
	rcptErr  error
	authUsed bool
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func (c *fakeSMTPClient) Mail(from string) error { c.from = from; return nil }
func (c *fakeSMTPClient) Rcpt(to string) error {
	if c.rcptErr != nil {
		return c.rcptErr
	}
	c.rcpts = append(c.rcpts, to)
	return nil
}
func (c *fakeSMTPClient) Data() (io.WriteCloser, error)   { return nopWriteCloser{&c.data}, nil }
func (c *fakeSMTPClient) Quit() error                     { c.quit = true; return nil }
func (c *fakeSMTPClient) Close() error                    { return nil }
func (c *fakeSMTPClient) StartTLS(*tls.Config) error      { return nil }
func (c *fakeSMTPClient) Auth(smtp.Auth) error            { c.authUsed = true; return nil }
func (c *fakeSMTPClient) Extension(string) (bool, string) { return false, "" }

func newTestMailer(t *testing.T, client *fakeSMTPClient) *SMTPMailer {
	t.Helper()
	m, err := NewSMTPMailer(SMTPSettings{Enabled: true, Host: "smtp.test", Port: 25, From: "tickets@example.com"})
	require.NoError(t, err)

	m.dialFn = func(ctx context.Context, cfg SMTPSettings) (net.Conn, smtpClient, error) {
		server, conn := net.Pipe()
		t.Cleanup(func() { server.Close() })
		return conn, client, nil
	}
	m.boundary = func() string { return "test-boundary" }
	return m
}

func TestSMTPMailer_SendWithAttachment(t *testing.T) {
	client := &fakeSMTPClient{}
	m := newTestMailer(t, client)

	attachment := []byte(strings.Repeat("\x89PNG", 40))
	err := m.Send(context.Background(), Message{
		To:      []string{"ana@x.com", "ana@x.com", " "},
		Subject: "Your QR Code for Launch",
		Body:    "Hi Ana,\n",
		Attachments: []Attachment{
			{Filename: "guest_1.png", ContentType: "image/png", Data: attachment},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "tickets@example.com", client.from)
	assert.Equal(t, []string{"ana@x.com"}, client.rcpts)
	assert.True(t, client.quit)
	assert.False(t, client.authUsed)

	parsed, err := mail.ReadMessage(bytes.NewReader(client.data.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "Your QR Code for Launch", parsed.Header.Get("Subject"))

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])

	text, err := mr.NextPart()
	require.NoError(t, err)
	body, _ := io.ReadAll(text)
	assert.Equal(t, "Hi Ana,\n", string(body))

	file, err := mr.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "guest_1.png", file.FileName())
	encoded, _ := io.ReadAll(file)
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, attachment, decoded)

	_, err = mr.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSMTPMailer_Disabled(t *testing.T) {
	m, err := NewSMTPMailer(SMTPSettings{})
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: []string{"a@x.com"}})
	assert.ErrorIs(t, err, ErrSMTPDisabled)
}

func TestSMTPMailer_Errors(t *testing.T) {
	tests := []struct {
		name   string
		msg    Message
		client *fakeSMTPClient
	}{
		{"no recipients", Message{Subject: "s"}, &fakeSMTPClient{}},
		{"invalid recipient", Message{To: []string{"not-an-address"}}, &fakeSMTPClient{}},
		{"invalid sender", Message{From: "bad", To: []string{"a@x.com"}}, &fakeSMTPClient{}},
		{"rcpt rejected", Message{To: []string{"a@x.com"}}, &fakeSMTPClient{rcptErr: errors.New("550 no such user")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMailer(t, tt.client)
			assert.Error(t, m.Send(context.Background(), tt.msg))
		})
	}
}

func TestSMTPMailer_DialError(t *testing.T) {
	m := newTestMailer(t, &fakeSMTPClient{})
	m.dialFn = func(context.Context, SMTPSettings) (net.Conn, smtpClient, error) {
		return nil, nil, errors.New("connection refused")
	}

	err := m.Send(context.Background(), Message{To: []string{"a@x.com"}})
	assert.EqualError(t, err, "connection refused")
}

func TestNewSMTPMailer_Validation(t *testing.T) {
	_, err := NewSMTPMailer(SMTPSettings{Enabled: true, Port: 25})
	assert.Error(t, err)

	_, err = NewSMTPMailer(SMTPSettings{Enabled: true, Host: "smtp.test"})
	assert.Error(t, err)
}

func TestWriteBase64Lines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeBase64Lines(&buf, bytes.Repeat([]byte{0xff}, 120)))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
}
