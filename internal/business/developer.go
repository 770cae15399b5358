package business

// DeveloperService stubs the low-code platform.
type DeveloperService struct{}

func NewDeveloperService() *DeveloperService { return &DeveloperService{} }

func (s *DeveloperService) FormDesigner(schema Payload) Payload {
	return Payload{"action": "form_designer", "schema": schema}
}

func (s *DeveloperService) WorkflowDesigner(bpmn string) Payload {
	return Payload{"action": "workflow_designer", "bpmn": bpmn}
}

func (s *DeveloperService) APIInvocation(name string, payload Payload) Payload {
	return Payload{"action": "api_invocation", "name": name, "payload": payload}
}

func (s *DeveloperService) CustomReport(query string) Payload {
	return Payload{"action": "custom_report", "query": query}
}

// AssetService stubs fixed-asset management.
type AssetService struct{}

func NewAssetService() *AssetService { return &AssetService{} }

func (s *AssetService) Register(payload Payload) Payload {
	return Payload{"action": "asset_register", "asset": payload}
}

func (s *AssetService) Borrow(assetID, userID int) Payload {
	return Payload{"action": "asset_borrow", "asset_id": assetID, "user_id": userID}
}

func (s *AssetService) Audit(assetID int) Payload {
	return Payload{"action": "asset_audit", "asset_id": assetID, "status": "ok"}
}
