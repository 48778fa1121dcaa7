package types

import "time"

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// NewToast creates a toast that expires ttl after now
func NewToast(level ToastLevel, message string, now time.Time, ttl time.Duration) Toast {
	return Toast{Level: level, Message: message, Expires: now.Add(ttl)}
}

// Live returns the toasts that have not expired at now
func Live(toasts []Toast, now time.Time) []Toast {
	var out []Toast
	for _, t := range toasts {
		if now.Before(t.Expires) {
			out = append(out, t)
		}
	}
	return out
}
