package domain

import "time"

// Account is a user of this service, authenticated by bearer token.
type Account struct {
	ID        string
	Name      string
	Token     string
	IsActive  bool
	CreatedAt time.Time
}

// User is a person known to the REST API (requester or service supplier).
type User struct {
	ID       int64  `json:"idUser"`
	Username string `json:"username"`
	Email    string `json:"userEmail,omitempty"`
	Phone    string `json:"userPhone,omitempty"`
	Status   string `json:"userStatus,omitempty"`
}

// UserPage is one page of the user directory.
type UserPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// NotificationStatus is the read state of a notification for one recipient.
type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// NotificationRecipient ties a notification to a user. Marking a notification
// read addresses the recipient row, not the notification.
type NotificationRecipient struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"userId"`
	NotificationID int64              `json:"notificationId"`
	Status         NotificationStatus `json:"status"`
}

// Notification is a message raised by the REST API, e.g. on a propose change.
type Notification struct {
	ID          int64                   `json:"id"`
	Identify    string                  `json:"identify"`
	Description string                  `json:"description"`
	CreatedAt   time.Time               `json:"createdAt"`
	Recipients  []NotificationRecipient `json:"recipients"`
}

// Unread reports whether any recipient has not read the notification yet.
func (n *Notification) Unread() bool {
	for _, r := range n.Recipients {
		if r.Status != NotificationRead {
			return true
		}
	}
	return false
}
