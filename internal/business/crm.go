package business

// CRMService stubs customer and sales-pipeline operations.
type CRMService struct{}

func NewCRMService() *CRMService { return &CRMService{} }

func (s *CRMService) Customer(payload Payload) Payload {
	return Payload{"action": "customer", "payload": payload}
}

func (s *CRMService) Opportunity(payload Payload) Payload {
	return Payload{"action": "opportunity", "payload": payload}
}

func (s *CRMService) Pipeline(stage string) Payload {
	return Payload{"action": "pipeline", "stage": stage}
}

func (s *CRMService) FollowUp(customerID int) Payload {
	return Payload{"action": "follow_up", "customer_id": customerID}
}

func (s *CRMService) Contract(payload Payload) Payload {
	return Payload{"action": "crm_contract", "payload": payload}
}

// TicketService stubs support tickets and live chat.
type TicketService struct{}

func NewTicketService() *TicketService { return &TicketService{} }

func (s *TicketService) LiveChat(sessionID string) Payload {
	return Payload{"action": "live_chat", "session_id": sessionID}
}

func (s *TicketService) Ticket(payload Payload) Payload {
	return Payload{"action": "ticket", "payload": payload, "status": "open"}
}

func (s *TicketService) Evaluate(ticketID int) Payload {
	return Payload{"action": "evaluate", "ticket_id": ticketID}
}

func (s *TicketService) SLA(ticketID int) Payload {
	return Payload{"action": "sla", "ticket_id": ticketID}
}
