package models

// Ticket is a numbered lottery ticket
type Ticket struct {
	Number string `json:"number"`
}

// TicketEntry pairs a ticket with its owner in a pool snapshot
type TicketEntry struct {
	Player *Player
	Ticket Ticket
}
