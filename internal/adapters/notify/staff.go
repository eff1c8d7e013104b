// Package notify alerts staff out-of-band when something needs their
// attention: a new order, a bespoke request, a warranty claim. Telegram
// first, SMTP as fallback; both are optional and misconfiguration only
// logs.
package notify

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/smtp"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rizqydermawanai-png/kzumi-store/internal/domain"
)

type StaffAlerter struct{}

func New() *StaffAlerter { return &StaffAlerter{} }

func (a *StaffAlerter) OrderPlaced(o *domain.Order) {
	var b strings.Builder
	fmt.Fprintf(&b, "Pesanan baru %s (%s)\n", o.ID.String()[:8], o.Type)
	fmt.Fprintf(&b, "Nama: %s\nEmail: %s\n", o.CustomerName, o.CustomerEmail)
	b.WriteString("Items:\n")
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%d %s\n", it.Name, it.Qty, domain.FormatIDR(it.UnitPrice))
	}
	fmt.Fprintf(&b, "Total: %s (ongkir %s, %s)\n", domain.FormatIDR(o.Total), domain.FormatIDR(o.ShippingCost), o.Courier)
	a.send("Pesanan baru "+o.ID.String()[:8], b.String())
}

func (a *StaffAlerter) CustomRequest(r *domain.CustomOrderRequest) {
	var b strings.Builder
	fmt.Fprintf(&b, "Permintaan custom baru %s\n", r.ID.String()[:8])
	fmt.Fprintf(&b, "Kontak: %s (%s, %s)\n", r.ContactName, r.ContactEmail, r.ContactPhone)
	fmt.Fprintf(&b, "Produk: %s, bahan %s warna %s, total %d pcs\n", r.Product, r.Material, r.Color, r.TotalQuantity())
	fmt.Fprintf(&b, "Estimasi: %s\n", domain.FormatIDR(r.EstimatePrice))
	a.send("Permintaan custom "+r.ID.String()[:8], b.String())
}

func (a *StaffAlerter) WarrantyClaim(c *domain.WarrantyClaim) {
	var b strings.Builder
	fmt.Fprintf(&b, "Klaim garansi baru %s\n", c.ID.String()[:8])
	fmt.Fprintf(&b, "Produk: %s\nPelanggan: %s (%s)\n", c.ProductName, c.CustomerName, c.CustomerEmail)
	fmt.Fprintf(&b, "Keluhan: %s\n", c.Description)
	a.send("Klaim garansi "+c.ID.String()[:8], b.String())
}

func (a *StaffAlerter) send(subject, body string) {
	if err := sendTelegram(body); err != nil {
		log.Warn().Err(err).Msg("telegram alert gagal")
		if os.Getenv("SMTP_HOST") != "" {
			if err := sendEmail(subject, body); err != nil {
				log.Warn().Err(err).Msg("email alert gagal")
			}
		}
	}
}

func sendTelegram(text string) error {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	rawIDs := os.Getenv("TELEGRAM_CHAT_IDS")
	if strings.TrimSpace(rawIDs) == "" {
		rawIDs = os.Getenv("TELEGRAM_CHAT_ID")
	}
	if token == "" || strings.TrimSpace(rawIDs) == "" {
		return fmt.Errorf("telegram vars kosong")
	}
	apiURL := "https://api.telegram.org/bot" + token + "/sendMessage"
	var lastErr error
	sent := false
	for _, part := range strings.Split(rawIDs, ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		form := url.Values{}
		form.Set("chat_id", id)
		form.Set("text", text)
		form.Set("disable_web_page_preview", "1")
		resp, err := http.PostForm(apiURL, form)
		if err != nil {
			lastErr = err
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode >= 300 {
				body, _ := io.ReadAll(resp.Body)
				lastErr = fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
				return
			}
			sent = true
		}()
	}
	if !sent && lastErr == nil {
		lastErr = fmt.Errorf("telegram chat ids kosong")
	}
	if sent {
		return nil
	}
	return lastErr
}

func sendEmail(subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	to := os.Getenv("STAFF_NOTIFY_EMAIL")
	if to == "" {
		to = "cs@kzumi.id"
	}
	if host == "" || port == "" || user == "" || pass == "" {
		log.Warn().Msg("SMTP tidak dikonfigurasi, email dilewati")
		return nil
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "From: %s\r\n", user)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, user, []string{to}, buf.Bytes())
}
