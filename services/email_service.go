package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Sarujan100/best-wishes-final-sub001/models"
)

const resendEndpoint = "https://api.resend.com/emails"

var ErrMailerUnavailable = errors.New("email delivery is not configured")

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

// NewResendClient creates a new Resend client
func NewResendClient(apiKey, from string) *ResendClient {
	if from == "" {
		from = "noreply@bestwishes.lk"
	}
	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEndpoint,
		http:     &http.Client{Timeout: 20 * time.Second},
	}
}

// WithEndpoint points the client at another Resend-compatible endpoint.
func (r *ResendClient) WithEndpoint(endpoint string) *ResendClient {
	r.endpoint = endpoint
	return r
}

type emailAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type emailPayload struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html"`
	Attachments []emailAttachment `json:"attachments,omitempty"`
}

func (r *ResendClient) send(ctx context.Context, payload emailPayload) error {
	payload.From = r.from

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Staff welcome
// ════════════════════════════════════════════════════════════

type StaffWelcomeEmailData struct {
	Name     string
	Email    string
	Role     string
	LoginURL string
}

// SendStaffWelcomeEmail tells a new staff member their account exists.
func (r *ResendClient) SendStaffWelcomeEmail(ctx context.Context, data StaffWelcomeEmailData) error {
	err := r.send(ctx, emailPayload{
		To:      data.Email,
		Subject: "Your Best Wishes staff account is ready",
		HTML:    buildStaffWelcomeHTML(data),
	})
	if err != nil {
		return err
	}
	log.Printf("[resend] staff welcome email sent to %s", data.Email)
	return nil
}

func buildStaffWelcomeHTML(data StaffWelcomeEmailData) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome to Best Wishes</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; padding: 60px 20px;">
      <div style="font-size: 24px; font-weight: 700; margin-bottom: 60px;">Best Wishes</div>
      <p style="font-size: 32px; font-weight: 700; margin: 0 0 24px 0;">Welcome aboard</p>
      <p style="font-size: 17px; color: #626262;">
        <span style="color: #000000; font-weight: 600;">%s</span>, an administrator created a staff account for you with the
        <span style="color: #000000; font-weight: 600;">%s</span> role.
      </p>
      <p style="font-size: 17px; color: #626262;">Sign in with this email address and the password your administrator shared with you.</p>
      <div style="margin: 40px 0;">
        <a href="%s" style="display: inline-block; padding: 16px 32px; background: #000000; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600;">Sign in</a>
      </div>
      <p style="font-size: 13px; color: #626262;">If you didn't expect this email, contact your administrator.</p>
    </div>
  </body>
</html>`, data.Name, data.Role, data.LoginURL)
}

// ════════════════════════════════════════════════════════════
// Order delivered
// ════════════════════════════════════════════════════════════

// SendOrderDeliveredEmail confirms delivery and attaches the invoice PDF when given.
func (r *ResendClient) SendOrderDeliveredEmail(ctx context.Context, order *models.Order, invoicePDF []byte) error {
	if order.CustomerEmail == "" {
		return nil
	}

	payload := emailPayload{
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Your order %s has been delivered", order.OrderNumber),
		HTML:    buildOrderDeliveredHTML(order),
	}
	if len(invoicePDF) > 0 {
		payload.Attachments = []emailAttachment{{
			Filename: fmt.Sprintf("invoice-%s.pdf", order.OrderNumber),
			Content:  base64.StdEncoding.EncodeToString(invoicePDF),
		}}
	}

	if err := r.send(ctx, payload); err != nil {
		return err
	}
	log.Printf("[resend] delivery email sent to %s for order %s", order.CustomerEmail, order.OrderNumber)
	return nil
}

func buildOrderDeliveredHTML(order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600;">Rs. %.2f</td>
      </tr>`, item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Order %s delivered</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td><h1 style="margin: 0; font-size: 26px; color: #262622;">Your order has arrived</h1></td></tr>
    <tr><td style="padding: 16px 0; font-size: 14px; color: #79776d;">Hi %s, order <b>%s</b> was delivered to %s.</td></tr>
    <tr>
      <td>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tbody>%s</tbody>
        </table>
      </td>
    </tr>
    <tr><td style="padding-top: 16px; font-size: 16px; font-weight: bold; text-align: right;">Total Rs. %.2f</td></tr>
    <tr><td style="padding-top: 24px; font-size: 14px; color: #79776d;">Thank you for shopping with Best Wishes.</td></tr>
  </table>
</body>
</html>`, order.OrderNumber, order.CustomerName, order.OrderNumber, order.ShippingAddress.String(), rows.String(), order.Total)
}

// ════════════════════════════════════════════════════════════
// Analytics report
// ════════════════════════════════════════════════════════════

// SendAnalyticsReport mails the sales report to one recipient with the PDF attached.
func (r *ResendClient) SendAnalyticsReport(ctx context.Context, to string, report *AnalyticsReport, reportPDF []byte) error {
	payload := emailPayload{
		To:      to,
		Subject: "Best Wishes sales report " + report.Period(),
		HTML:    buildAnalyticsReportHTML(report),
	}
	if len(reportPDF) > 0 {
		payload.Attachments = []emailAttachment{{
			Filename: fmt.Sprintf("sales-report-%s.pdf", report.From.Format("2006-01-02")),
			Content:  base64.StdEncoding.EncodeToString(reportPDF),
		}}
	}
	if err := r.send(ctx, payload); err != nil {
		return err
	}
	log.Printf("[resend] analytics report sent to %s for %s", to, report.Period())
	return nil
}

func buildAnalyticsReportHTML(report *AnalyticsReport) string {
	var rows strings.Builder
	for _, p := range report.TopProducts {
		rows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600;">Rs. %.2f</td>
      </tr>`, p.ProductName, p.SalesCount, p.Revenue))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Sales report</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr><td><h1 style="margin: 0; font-size: 26px; color: #262622;">Sales report</h1></td></tr>
    <tr><td style="padding: 8px 0 16px; font-size: 14px; color: #79776d;">%s</td></tr>
    <tr><td style="font-size: 15px;">Orders: <b>%d</b></td></tr>
    <tr><td style="font-size: 15px;">Revenue: <b>Rs. %.2f</b></td></tr>
    <tr><td style="font-size: 15px;">Average order: <b>Rs. %.2f</b></td></tr>
    <tr><td style="font-size: 15px; padding-bottom: 16px;">Items sold: <b>%d</b></td></tr>
    <tr>
      <td>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <tbody>%s</tbody>
        </table>
      </td>
    </tr>
    <tr><td style="padding-top: 24px; font-size: 13px; color: #79776d;">The full report is attached as a PDF.</td></tr>
  </table>
</body>
</html>`, report.Period(), report.Orders, report.Revenue, report.AverageOrder, report.ItemsSold, rows.String())
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var (
	mailerMu sync.RWMutex
	mailer   *ResendClient
)

// InitMailer enables email delivery when an API key is configured.
func InitMailer(apiKey, from string) {
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, emails are skipped")
		return
	}
	SetMailer(NewResendClient(apiKey, from))
}

func SetMailer(m *ResendClient) {
	mailerMu.Lock()
	defer mailerMu.Unlock()
	mailer = m
}

// GetMailer returns nil when email delivery is disabled.
func GetMailer() *ResendClient {
	mailerMu.RLock()
	defer mailerMu.RUnlock()
	return mailer
}

// SendOrderDeliveredEmailAsync renders the invoice and mails it without blocking the request.
func SendOrderDeliveredEmailAsync(order models.Order) {
	m := GetMailer()
	if m == nil {
		return
	}
	runBackground(func(ctx context.Context) {
		pdf, err := GenerateInvoicePDF(&order)
		if err != nil {
			log.Printf("[email.delivered] ⚠️ invoice generation failed for %s: %v", order.OrderNumber, err)
		}
		if err := m.SendOrderDeliveredEmail(ctx, &order, pdf); err != nil {
			log.Printf("[email.delivered] ⚠️ %v", err)
		}
	})
}

// SendStaffWelcomeEmailAsync mails a new staff member without blocking the request.
func SendStaffWelcomeEmailAsync(data StaffWelcomeEmailData) {
	m := GetMailer()
	if m == nil {
		return
	}
	runBackground(func(ctx context.Context) {
		if err := m.SendStaffWelcomeEmail(ctx, data); err != nil {
			log.Printf("[email.welcome] ⚠️ %v", err)
		}
	})
}
