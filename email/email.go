// Package email defines the sending contract the registration flow depends
// on. Delivery failure is never fatal to a registration: callers report it
// and move on.
package email

import "context"

type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
}

// Result reports what the provider accepted. MessageID is provider-assigned
// and may be empty for senders that do not track one.
type Result struct {
	MessageID string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) (Result, error)
}
