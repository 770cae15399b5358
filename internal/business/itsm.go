package business

// ITSMService stubs IT service management operations.
type ITSMService struct{}

func NewITSMService() *ITSMService { return &ITSMService{} }

func (s *ITSMService) Incident(payload Payload) Payload {
	return Payload{"action": "incident", "payload": payload}
}

func (s *ITSMService) AssetRepair(payload Payload) Payload {
	return Payload{"action": "asset_repair", "payload": payload}
}

func (s *ITSMService) CMDB(payload Payload) Payload {
	return Payload{"action": "cmdb", "payload": payload}
}

func (s *ITSMService) Monitor(payload Payload) Payload {
	return Payload{"action": "monitor", "payload": payload}
}

// BIService stubs reporting dashboards.
type BIService struct{}

func NewBIService() *BIService { return &BIService{} }

func (s *BIService) Dashboard(payload Payload) Payload {
	return Payload{"action": "dashboard", "payload": payload}
}

func (s *BIService) SalesReport(payload Payload) Payload {
	return Payload{"action": "sales_report", "payload": payload}
}

func (s *BIService) HRReport(payload Payload) Payload {
	return Payload{"action": "hr_report", "payload": payload}
}

func (s *BIService) SelfService(query string) Payload {
	return Payload{"action": "self_service", "query": query}
}
