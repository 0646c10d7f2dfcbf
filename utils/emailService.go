package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"learnflow/config"
)

// sendEmail delivers one transactional email through SendGrid. Without an
// API key configured the message is logged and dropped.
func sendEmail(toEmail, toName, subject, htmlBody string) {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email skipped (no SendGrid key): to=%s subject=%s", toEmail, subject)
		return
	}

	from := mail.NewEmail("LearnFlow", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return
	}
	if response.StatusCode >= 300 {
		log.Printf("Email to %s rejected with status %d", toEmail, response.StatusCode)
	}
}

// getEmailTemplate wraps body content in the shared LearnFlow layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #4F46E5; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F2937; line-height: 1.6; }
			.content h2 { color: #1F2937; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #4F46E5; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #EEF2FF; padding: 15px; border-radius: 4px; border-left: 4px solid #4F46E5; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNFLOW</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnFlow. All rights reserved.<br>
				Keep learning, one lesson at a time.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to LearnFlow! Browse the catalog and start your first course today.</p>
		<a class="btn" href="https://learnflow.io/courses">Browse Courses</a>
	`, name)
	sendEmail(email, name, "Welcome to LearnFlow", getEmailTemplate("Welcome aboard!", body))
}

// SendOrderConfirmationEmail confirms a completed purchase
func SendOrderConfirmationEmail(email, name, orderNumber string, total float64) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your payment went through. Your courses are ready in your dashboard.</p>
		<div class="info-box">
			Order number: <strong>%s</strong><br>
			Amount charged: <strong>$%.2f</strong>
		</div>
		<a class="btn" href="https://learnflow.io/dashboard">Go to Dashboard</a>
	`, name, orderNumber, total)
	sendEmail(email, name, "Your LearnFlow order "+orderNumber, getEmailTemplate("Payment successful!", body))
}

// SendCertificateEmail congratulates a user on completing a course
func SendCertificateEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You completed <strong>%s</strong> and earned your certificate.</p>
		<a class="btn" href="https://learnflow.io/dashboard">View Certificate</a>
	`, name, courseTitle)
	sendEmail(email, name, "Certificate earned: "+courseTitle, getEmailTemplate("Course complete!", body))
}
