package entity

import "time"

// Message is a channel message reduced to what the attendance report needs
type Message struct {
	Timestamp time.Time
	Reactions []Reaction
}

// Reaction is one emoji on a message together with the users who applied it
type Reaction struct {
	Name  string
	Users []string
}
