package business

// ProjectService stubs project planning and tracking operations.
type ProjectService struct{}

func NewProjectService() *ProjectService { return &ProjectService{} }

func (s *ProjectService) Initiate(payload Payload) Payload {
	return Payload{"action": "project_initiate", "payload": payload}
}

func (s *ProjectService) WBS(payload Payload) Payload {
	return Payload{"action": "wbs", "payload": payload}
}

func (s *ProjectService) AssignTask(task Payload) Payload {
	return Payload{"action": "assign_task", "task": task}
}

func (s *ProjectService) Milestone(milestone Payload) Payload {
	return Payload{"action": "milestone", "milestone": milestone}
}

func (s *ProjectService) Gantt(projectID int) Payload {
	return Payload{"action": "gantt", "project_id": projectID}
}

func (s *ProjectService) Budget(payload Payload) Payload {
	return Payload{"action": "project_budget", "payload": payload}
}

func (s *ProjectService) CostReport(projectID int) Payload {
	return Payload{"action": "cost_report", "project_id": projectID}
}

func (s *ProjectService) Risk(payload Payload) Payload {
	return Payload{"action": "risk", "payload": payload}
}
