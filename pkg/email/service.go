// pkg/email/service.go
package email

import (
	"context"
	"time"

	ent "github.com/localbzz/clientops/ent/generated"
)

// EmailService defines the interface for sending emails
type EmailService interface {
	SendInviteEmail(ctx context.Context, profile *ent.Profile, token string) error
	SendWelcomeEmail(ctx context.Context, profile *ent.Profile) error
}

// EmailTemplate represents an email template
type EmailTemplate struct {
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailData contains data for template rendering
type EmailData struct {
	Profile   *ent.Profile
	Token     string
	ExpiresAt time.Time
	AppName   string
	BaseURL   string
	InviteURL string
}

// Config holds email service configuration
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
	FromName     string
	BaseURL      string
}

// Templates holds all email templates
type Templates struct {
	Invite  EmailTemplate
	Welcome EmailTemplate
}

// NewTemplates creates default email templates
func NewTemplates() *Templates {
	return &Templates{
		Invite: EmailTemplate{
			Subject: "You've been invited to {{.AppName}}",
			HTMLBody: `
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Team Invitation</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; }
        .button { display: inline-block; padding: 12px 24px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 14px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>You're invited to {{.AppName}}</h1>
        </div>

        <p>Hi,</p>

        <p>You've been invited to join the {{.AppName}} team workspace. Click the button below to set up your account:</p>

        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.InviteURL}}" class="button">Accept Invitation</a>
        </p>

        <p>If the button doesn't work, you can copy and paste this link into your browser:</p>
        <p><a href="{{.InviteURL}}">{{.InviteURL}}</a></p>

        <p>This invitation will expire on {{.ExpiresAt.Format "January 2, 2006 at 3:04 PM"}}.</p>

        <p>If you weren't expecting this invitation, you can safely ignore this email.</p>

        <div class="footer">
            <p>Best regards,<br>The {{.AppName}} Team</p>
        </div>
    </div>
</body>
</html>`,
			TextBody: `You're invited to {{.AppName}}

Hi,

You've been invited to join the {{.AppName}} team workspace. Visit this link to set up your account:

{{.InviteURL}}

This invitation will expire on {{.ExpiresAt.Format "January 2, 2006 at 3:04 PM"}}.

If you weren't expecting this invitation, you can safely ignore this email.

Best regards,
The {{.AppName}} Team`,
		},

		Welcome: EmailTemplate{
			Subject: "Welcome to {{.AppName}}",
			HTMLBody: `
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to {{.AppName}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; }
        .button { display: inline-block; padding: 12px 24px; background-color: #28a745; color: white; text-decoration: none; border-radius: 5px; }
        .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 14px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Welcome to {{.AppName}}!</h1>
        </div>

        <p>Hi {{.Profile.DisplayName}},</p>

        <p>Your account is set up and ready to use. You can now see your clients, their monthly cycles, and the tasks assigned to you.</p>

        <p style="text-align: center; margin: 30px 0;">
            <a href="{{.BaseURL}}" class="button">Open {{.AppName}}</a>
        </p>

        <div class="footer">
            <p>Best regards,<br>The {{.AppName}} Team</p>
        </div>
    </div>
</body>
</html>`,
			TextBody: `Welcome to {{.AppName}}!

Hi {{.Profile.DisplayName}},

Your account is set up and ready to use. You can now see your clients, their monthly cycles, and the tasks assigned to you.

Open {{.AppName}}: {{.BaseURL}}

Best regards,
The {{.AppName}} Team`,
		},
	}
}
