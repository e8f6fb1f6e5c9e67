package schedule

import (
	domainTemplate "go-scheduler-api/src/domain/template"
	messageController "go-scheduler-api/src/infrastructure/rest/controllers/message"
)

type ScheduleRequest struct {
	Content      string `json:"content" binding:"required,notblank"`
	Recipient    string `json:"recipient" binding:"required,notblank"`
	ScheduleTime string `json:"schedule_time" binding:"required,notblank"`
	Type         string `json:"type" binding:"omitempty,max=32"`
}

type SendNowRequest struct {
	Content   string `json:"content" binding:"required,notblank"`
	Recipient string `json:"recipient" binding:"required,notblank"`
	Type      string `json:"type" binding:"omitempty,max=32"`
}

type TemplateResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Buckets struct {
	Scheduled []messageController.MessageResponse `json:"scheduled"`
	Sent      []messageController.MessageResponse `json:"sent"`
	Templates []TemplateResponse                  `json:"templates"`
}

type BucketsResponse struct {
	Success bool    `json:"success"`
	Data    Buckets `json:"data"`
}

type MessageCreatedResponse struct {
	Success bool                              `json:"success"`
	Message string                            `json:"message"`
	Data    messageController.MessageResponse `json:"data"`
}

type TemplatesResponse struct {
	Success bool               `json:"success"`
	Data    []TemplateResponse `json:"data"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Version       string `json:"version"`
	TotalMessages int    `json:"total_messages"`
}

func toTemplateResponses(templates *[]domainTemplate.Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(*templates))
	for _, t := range *templates {
		out = append(out, TemplateResponse{ID: t.ID, Name: t.Name, Content: t.Content})
	}
	return out
}
