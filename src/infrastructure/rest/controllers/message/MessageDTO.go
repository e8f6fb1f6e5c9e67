package message

import domainMessage "go-scheduler-api/src/domain/message"

type NewMessageRequest struct {
	Contact string `json:"contact" binding:"required,notblank"`
	Message string `json:"message" binding:"required,notblank"`
}

type MessageResponse struct {
	ID           int    `json:"id"`
	Contact      string `json:"contact"`
	Message      string `json:"message"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	ScheduleTime string `json:"schedule_time,omitempty"`
}

type SubmitResponse struct {
	Status    string `json:"status"`
	MessageID int    `json:"message_id"`
	Timestamp string `json:"timestamp"`
}

type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

type DeleteResponse struct {
	Message      string `json:"message"`
	TotalDeleted int    `json:"total_deleted"`
}

type StatusResponse struct {
	Message       string `json:"message"`
	Time          string `json:"time"`
	TotalMessages int    `json:"total_messages"`
}

func ToMessageResponse(m *domainMessage.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		Contact:      m.Contact,
		Message:      m.Content,
		Type:         m.Type,
		Status:       string(m.Status),
		Timestamp:    m.Timestamp(),
		ScheduleTime: m.ScheduleTime,
	}
}

func ToMessageResponses(messages *[]domainMessage.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(*messages))
	for i := range *messages {
		out = append(out, ToMessageResponse(&(*messages)[i]))
	}
	return out
}
