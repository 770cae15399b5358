package business

// OAService stubs office-automation approvals, notices and admin workflows.
type OAService struct{}

func NewOAService() *OAService { return &OAService{} }

func (s *OAService) GenericApproval(form Payload) Payload {
	return Payload{"action": "generic_approval", "form": form, "status": "approved"}
}

func (s *OAService) DocumentFlow(docID int, step string) Payload {
	return Payload{"action": "document_flow", "doc_id": docID, "step": step}
}

func (s *OAService) WorkflowDesign(diagram string) Payload {
	return Payload{"action": "workflow_design", "diagram": diagram}
}

func (s *OAService) WorkflowDelegate(taskID, target int) Payload {
	return Payload{"action": "workflow_delegate", "task_id": taskID, "target": target}
}

func (s *OAService) Bulletin(message string) Payload {
	return Payload{"action": "bulletin", "message": message}
}

func (s *OAService) Meeting(agenda Payload) Payload {
	return Payload{"action": "meeting", "agenda": agenda}
}

func (s *OAService) VehicleDispatch(request Payload) Payload {
	return Payload{"action": "vehicle_dispatch", "request": request}
}

func (s *OAService) Supplies(item, op string) Payload {
	return Payload{"action": "supplies", "item": item, "op": op}
}
