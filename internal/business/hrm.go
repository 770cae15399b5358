package business

// HRMService stubs recruitment, attendance, performance and payroll.
type HRMService struct{}

func NewHRMService() *HRMService { return &HRMService{} }

func (s *HRMService) Recruitment(req Payload) Payload {
	return Payload{"action": "recruitment", "req": req}
}

func (s *HRMService) Interview(candidateID int) Payload {
	return Payload{"action": "interview", "candidate_id": candidateID}
}

func (s *HRMService) Offer(candidateID int) Payload {
	return Payload{"action": "offer", "candidate_id": candidateID, "status": "sent"}
}

func (s *HRMService) EmployeeProfile(userID int) Payload {
	return Payload{"action": "employee_profile", "user_id": userID}
}

func (s *HRMService) Onboarding(userID int) Payload {
	return Payload{"action": "onboarding", "user_id": userID}
}

func (s *HRMService) Attendance(employeeID int, event Payload) Payload {
	return Payload{"action": "attendance", "employee_id": employeeID, "event": event}
}

func (s *HRMService) Leave(employeeID int, payload Payload) Payload {
	return Payload{"action": "leave", "employee_id": employeeID, "payload": payload}
}

func (s *HRMService) KPIPlan(plan Payload) Payload {
	return Payload{"action": "kpi_plan", "plan": plan}
}

func (s *HRMService) PerformanceReview(userID int) Payload {
	return Payload{"action": "performance_review", "user_id": userID}
}

func (s *HRMService) PayrollRun(period string) Payload {
	return Payload{"action": "payroll_run", "period": period, "status": "completed"}
}
