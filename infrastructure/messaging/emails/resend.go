package emails

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"

	"certverify.io/infrastructure/logger"
	"github.com/resend/resend-go/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

type ResendService struct {
}

func (rs *ResendService) SendEmail(toEmail string, subject string, templateName string, opts interface{}) bool {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		logger.Warning("resend api key missing, email not sent", logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		})
		return false
	}

	client := resend.NewClient(apiKey)

	html := RenderTemplate(templateName, opts)
	if html == nil {
		logger.Error("failed to load email template", logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		}, logger.LoggerOptions{
			Key:  "toEmail",
			Data: toEmail,
		})
		return false
	}

	params := &resend.SendEmailRequest{
		From:    os.Getenv("RESEND_DEFAULT_EMAIL"),
		To:      []string{toEmail},
		Subject: subject,
		Html:    *html,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		logger.Error("an error occured while trying to send email using resend service", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "toEmail",
			Data: toEmail,
		}, logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		})
		return false
	}
	logger.Info(fmt.Sprintf("successfully sent email to %s", toEmail), logger.LoggerOptions{
		Key:  "templateName",
		Data: templateName,
	}, logger.LoggerOptions{
		Key:  "service",
		Data: "resend",
	})
	return true
}

// RenderTemplate executes an embedded html template. It returns nil when the
// template is unknown or fails to execute.
func RenderTemplate(templateName string, opts interface{}) *string {
	var buffer bytes.Buffer
	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", templateName))
	if err != nil {
		logger.Error("failed to parse email template", logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil
	}
	err = tmpl.Execute(&buffer, opts)
	if err != nil {
		logger.Error("failed to execute email template", logger.LoggerOptions{
			Key:  "templateName",
			Data: templateName,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil
	}
	templateString := buffer.String()
	return &templateString
}
