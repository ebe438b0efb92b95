// Package share builds the links and messages used to share an earnings
// estimate: a chat message, an email and a copyable link.
package share

import (
	"net/url"
	"strings"
)

// Placeholder marks where the result URL goes in a message template.
const Placeholder = "[link]"

const (
	ChatBaseURL  = "https://wa.me/"
	EmailSubject = "My London Uber Driver Earnings Estimate"
)

// Message replaces the first Placeholder in template with link.
func Message(template, link string) string {
	return strings.Replace(template, Placeholder, link, 1)
}

// ChatURL returns the WhatsApp link that opens a chat prefilled with the
// message.
func ChatURL(template, link string) string {
	return ChatBaseURL + "?text=" + EscapeComponent(Message(template, link))
}

// EmailURL returns a mailto URI with the subject and the message as body.
func EmailURL(template, link string) string {
	return "mailto:?subject=" + EscapeComponent(EmailSubject) +
		"&body=" + EscapeComponent(Message(template, link))
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EscapeComponent escapes s the way browsers do in encodeURIComponent, so
// links built here match the ones built by the page scripts.
func EscapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
