package model

// NotificationConfig controls how chain outcomes are surfaced to the user.
type NotificationConfig struct {
	// Desktop enables OS desktop notifications.
	Desktop bool `json:"desktop"`
	// WebhookURL receives a JSON POST per event when set.
	WebhookURL string `json:"webhook_url,omitempty"`
}
