package business

// MobileService stubs mobile approval and messaging flows.
type MobileService struct{}

func NewMobileService() *MobileService { return &MobileService{} }

func (s *MobileService) Approve(taskID int) Payload {
	return Payload{"action": "mobile_approve", "task_id": taskID}
}

func (s *MobileService) Punch(userID int) Payload {
	return Payload{"action": "mobile_punch", "user_id": userID}
}

func (s *MobileService) Reimburse(claimID int) Payload {
	return Payload{"action": "mobile_reimburse", "claim_id": claimID}
}

func (s *MobileService) IM(channel, message string) Payload {
	return Payload{"action": "mobile_im", "channel": channel, "message": message}
}

// PortalService stubs the unified workspace portal.
type PortalService struct{}

func NewPortalService() *PortalService { return &PortalService{} }

func (s *PortalService) UnifiedLogin(userID int) Payload {
	return Payload{"action": "unified_login", "user_id": userID}
}

func (s *PortalService) TodoCenter(userID int) Payload {
	return Payload{"action": "todo_center", "user_id": userID}
}

func (s *PortalService) Workspace(userID int) Payload {
	return Payload{"action": "workspace", "user_id": userID}
}

func (s *PortalService) Navigation() Payload {
	return Payload{"action": "navigation", "status": "ok"}
}
