package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // 固定收件人（站点联系邮箱）
}

// Message HTML 邮件
type Message struct {
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

var ErrNotConfigured = errors.New("mail not configured")

type SMTP struct {
	cfg  Config
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTP(cfg Config) *SMTP { return &SMTP{cfg: cfg, send: smtp.SendMail} }

func (s *SMTP) Send(ctx context.Context, m Message) error {
	if s.cfg.Host == "" || s.cfg.To == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	if err := s.send(addr, auth, s.cfg.From, []string{s.cfg.To}, BuildHTML(s.cfg.From, s.cfg.To, m)); err != nil {
		return fmt.Errorf("send html mail: %w", err)
	}
	return nil
}

// BuildHTML 组装报文（头部顺序固定，便于测试）
func BuildHTML(from, to string, m Message) []byte {
	var b strings.Builder
	headers := [][2]string{
		{"From", from},
		{"To", to},
		{"Subject", m.Subject},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/html; charset="UTF-8"`},
	}
	for _, h := range headers {
		b.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(m.HTML)
	return []byte(b.String())
}
