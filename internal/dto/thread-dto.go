package dto

type RoomSummaryResponse struct {
	MatchingID    uint    `json:"matching_id"`
	MenteeName    string  `json:"mentee_name"`
	MentorName    string  `json:"mentor_name"`
	Status        string  `json:"status"`
	AnswerCount   int     `json:"answer_count"`
	MessageCount  int     `json:"message_count"`
	LastMessageAt *string `json:"last_message_at,omitempty"`
}

type RoomListResponse struct {
	Items []RoomSummaryResponse `json:"items"`
	Total int64                 `json:"total"`
}

type RoomDetailResponse struct {
	MatchingID uint                  `json:"matching_id"`
	Mentee     ApplicationResponse   `json:"mentee"`
	Mentor     ApplicationResponse   `json:"mentor"`
	Status     string                `json:"status"`
	Messages   []RoomMessageResponse `json:"messages"`
}

type RoomMessageResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	AuthorID  uint   `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type PostMessageRequest struct {
	Type    string `json:"type" validate:"required,oneof=QUESTION ANSWER"`
	Content string `json:"content" validate:"required"`
}
