package email

// Local copies of the hosted templates, rendered by the SMTP sender. Keys use
// the same variable names the hosted templates receive.

// inquiryNotificationHTML is the HTML template for the owner notification
const inquiryNotificationHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Client Inquiry</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #111827; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #111827; margin-top: 10px; white-space: pre-wrap; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Client Inquiry</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div class="value">{{.name}} ({{.email}})</div>
            </div>
            <div class="field">
                <div class="label">Company / Website:</div>
                <div class="value">{{.company}} / {{.website}}</div>
            </div>
            <div class="field">
                <div class="label">Topics:</div>
                <div class="value">{{.topics}}</div>
            </div>
            <div class="field">
                <div class="label">Budget / Timeline:</div>
                <div class="value">{{.budget}} / {{.timeline}}</div>
            </div>
            <div class="field">
                <div class="label">Preferred contact:</div>
                <div class="value">{{.contactMethod}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>Sent from the website contact form. Reply to this email to answer {{.name}} directly.</p>
        </div>
    </div>
</body>
</html>`

// confirmationHTML is the auto-reply sent to the visitor
const confirmationHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thanks for reaching out</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <p>Hi {{.NAME}},</p>
        <p>Thanks for getting in touch. I have received your message and will get back to you within 24 hours.</p>
        <p>If it is urgent, just reply to this email.</p>
        <p>Julian</p>
    </div>
</body>
</html>`

// DefaultTemplates maps the default template identifiers to their local HTML.
func DefaultTemplates(notificationID, confirmationID string) map[string]string {
	if notificationID == "" {
		notificationID = InquiryNotificationTemplate
	}
	if confirmationID == "" {
		confirmationID = ConfirmationTemplate
	}
	return map[string]string{
		notificationID: inquiryNotificationHTML,
		confirmationID: confirmationHTML,
	}
}
