package booking

import "bluerobins/utils"

// User-visible precondition failures. All are detected before any
// write; handlers surface the message verbatim.
var (
	ErrMissingMentor   = utils.NewServiceError("missingMentor", "Mentor is required")
	ErrMentorNotFound  = utils.NewServiceError("mentorNotFound", "Mentor not found")
	ErrProjectNotFound = utils.NewServiceError("projectNotFound", "Project not found")
	ErrNoSpots         = utils.NewServiceError("noSpots", "No spots available")
	ErrBookingNotFound = utils.NewServiceError("bookingNotFound", "Booking not found")
	ErrNotAllowed      = utils.NewServiceError("notAllowed", "You cannot modify this booking")
)
