package business

// DocumentService stubs collaborative document operations.
type DocumentService struct{}

func NewDocumentService() *DocumentService { return &DocumentService{} }

func (s *DocumentService) Edit(docID int, content string) Payload {
	return Payload{"action": "document_edit", "doc_id": docID, "content": content}
}

func (s *DocumentService) Collaborate(docID int, userIDs []int) Payload {
	return Payload{"action": "document_collaborate", "doc_id": docID, "users": len(userIDs)}
}

func (s *DocumentService) VersionHistory(docID int) Payload {
	return Payload{"action": "version_history", "doc_id": docID}
}

func (s *DocumentService) Comment(docID int, text string) Payload {
	return Payload{"action": "document_comment", "doc_id": docID, "text": text}
}

func (s *DocumentService) Share(docID int, target string) Payload {
	return Payload{"action": "document_share", "doc_id": docID, "target": target}
}

func (s *DocumentService) Tag(docID int, tags []string) Payload {
	return Payload{"action": "document_tag", "doc_id": docID, "tags": tags}
}

// CommunicationService stubs chat, meetings and email.
type CommunicationService struct{}

func NewCommunicationService() *CommunicationService { return &CommunicationService{} }

func (s *CommunicationService) Chat(channel, message string) Payload {
	return Payload{"action": "chat", "channel": channel, "message": message}
}

func (s *CommunicationService) Notify(channel string, userID int) Payload {
	return Payload{"action": "notify", "channel": channel, "user_id": userID}
}

func (s *CommunicationService) Call(meetingID string) Payload {
	return Payload{"action": "call", "meeting_id": meetingID}
}

func (s *CommunicationService) Record(meetingID string) Payload {
	return Payload{"action": "record", "meeting_id": meetingID}
}

func (s *CommunicationService) Email(payload Payload) Payload {
	return Payload{"action": "email", "payload": payload}
}

// CalendarTaskService stubs calendar events, reminders and task tracking.
type CalendarTaskService struct{}

func NewCalendarTaskService() *CalendarTaskService { return &CalendarTaskService{} }

func (s *CalendarTaskService) CalendarEvent(userID int, payload Payload) Payload {
	return Payload{"action": "calendar_event", "user_id": userID, "event": payload}
}

func (s *CalendarTaskService) Remind(eventID int) Payload {
	return Payload{"action": "remind", "event_id": eventID}
}

func (s *CalendarTaskService) TaskAssign(taskID, assignee int) Payload {
	return Payload{"action": "task_assign", "task_id": taskID, "assignee": assignee}
}

func (s *CalendarTaskService) TaskProgress(taskID, percent int) Payload {
	return Payload{"action": "task_progress", "task_id": taskID, "percent": percent}
}

func (s *CalendarTaskService) ResourceBooking(resource, slot string) Payload {
	return Payload{"action": "resource_booking", "resource": resource, "slot": slot}
}
