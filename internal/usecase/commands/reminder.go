package commands

import (
	"fmt"
	"html"
)

const reminderSubject = "Payment Required for Ad Approval"

const reminderLead = "Please complete the payment using the following link to approve your ad:"

func reminderBodies(link string) (plain, htmlBody string) {
	plain = fmt.Sprintf("%s\n%s", reminderLead, link)
	htmlBody = fmt.Sprintf("<p>%s</p><a href='%s'>Pay Now</a>", reminderLead, html.EscapeString(link))
	return plain, htmlBody
}
