package model

import "time"

type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Handled   bool
	RemoteIP  *string
	CreatedAt time.Time
}
