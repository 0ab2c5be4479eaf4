package handlers

// HandlerBundle aggregates every HTTP handler so route registration
// takes one argument.
type HandlerBundle struct {
	Auth    *AuthHandler
	User    *UserHandler
	Mentor  *MentorHandler
	Booking *BookingHandler
	Cart    *CartHandler
	Notes   *NoteHandler
	Chat    *ChatHandler
}
