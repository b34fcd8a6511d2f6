package entity

// PermissionStatus reports whether the delivery layer may show notifications.
type PermissionStatus string

const (
	PermissionGranted     PermissionStatus = "granted"
	PermissionDenied      PermissionStatus = "denied"
	PermissionUnsupported PermissionStatus = "unsupported"
)

// NotificationOptions mirror the platform notification options the delivery
// layer understands. Tag de-duplication is delegated to the platform: the last
// write for a given tag wins, so repeated deliveries for the same flight and
// trigger collapse into one.
type NotificationOptions struct {
	Tag                string `json:"tag"`
	RequireInteraction bool   `json:"requireInteraction,omitempty"`
}
