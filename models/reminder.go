package models

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	MemberUserID  string `json:"memberUserId"`
	MentorID      string `json:"mentorId"`
	MentorName    string `json:"mentorName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}
