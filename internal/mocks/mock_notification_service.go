package mocks

import "github.com/MohamedMedan1/Tasque-Api/domain"

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendEmailFunc func(to, subject, message string) error

	// SentEmails records every delivery attempt for assertions
	SentEmails []SentEmail
}

// SentEmail captures one SendEmail call
type SentEmail struct {
	To      string
	Subject string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendEmail records the message and succeeds unless SendEmailFunc says otherwise
func (m *MockNotificationService) SendEmail(to, subject, message string) error {
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Message: message})
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, message)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
