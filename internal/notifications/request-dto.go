package notifications

type AnnouncementRecipient struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

type AnnouncementRequest struct {
	Subject    string                  `json:"subject" binding:"required,min=3,max=200"`
	Message    string                  `json:"message" binding:"required,min=3,max=2000"`
	Recipients []AnnouncementRecipient `json:"recipients" binding:"required,min=1,dive"`
	LocationID *int64                  `json:"locationId"`
}
