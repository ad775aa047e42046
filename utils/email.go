package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/smtp"
	"strconv"

	"cinema_booking/config"

	jwemail "github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation email template.
type OrderConfirmationData struct {
	OrderCode     string
	MovieName     string
	Showtime      string
	Seats         string
	TotalAmount   float64
	PaymentMethod string
	DetailLink    string
}

const orderConfirmationTmpl = `<html><body>
<h2>Your tickets are confirmed</h2>
<p>Order <b>{{.OrderCode}}</b></p>
<p>{{.MovieName}} — {{.Showtime}}</p>
<p>Seats: {{.Seats}}</p>
<p>Total: {{.TotalAmount}} — {{.PaymentMethod}}</p>
<p><img src="cid:qr_checkin_code" alt="check-in QR"/></p>
<p><a href="{{.DetailLink}}">Order detail</a></p>
</body></html>`

// SendOrderConfirmationEmail sends the receipt with an embedded check-in QR.
// Called from a goroutine; failures are logged only.
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	tmpl, err := template.New("order_confirmation").Parse(orderConfirmationTmpl)
	if err != nil {
		log.Printf("email: cannot parse confirmation template: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("email: cannot render confirmation template: %v", err)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.ConfigDefault("SMTP_FROM", "CinemaBooking <no-reply@cinemabooking.local>"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your tickets - order "+data.OrderCode)
	m.SetBody("text/html", body.String())

	qrBytes, err := GenerateQRCode(data.OrderCode, 400)
	if err != nil {
		log.Printf("email: cannot generate QR for order %s: %v", data.OrderCode, err)
	} else {
		m.Embed("qr_checkin.png",
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<qr_checkin_code>"},
				"Content-Disposition": {"inline"},
			}),
		)
	}

	port, _ := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	d := gomail.NewDialer(config.Config("SMTP_HOST"), port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	if err := d.DialAndSend(m); err != nil {
		log.Printf("email: cannot send confirmation to %s: %v", to, err)
	}
}

// SendPasswordResetEmail sends the plain-text reset link.
func SendPasswordResetEmail(to, resetLink string) error {
	e := jwemail.NewEmail()
	e.From = config.ConfigDefault("SMTP_FROM", "CinemaBooking <no-reply@cinemabooking.local>")
	e.To = []string{to}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Follow this link to reset your password: %s\nThe link expires in one hour.", resetLink))

	host := config.Config("SMTP_HOST")
	addr := host + ":" + config.ConfigDefault("SMTP_PORT", "587")
	auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), host)
	return e.Send(addr, auth)
}
