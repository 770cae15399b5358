package business

// SupplyChainService stubs procurement, warehouse, sales and production.
type SupplyChainService struct{}

func NewSupplyChainService() *SupplyChainService { return &SupplyChainService{} }

func (s *SupplyChainService) PurchaseRequest(payload Payload) Payload {
	return Payload{"action": "purchase_request", "payload": payload}
}

func (s *SupplyChainService) PurchaseOrder(payload Payload) Payload {
	return Payload{"action": "purchase_order", "payload": payload, "status": "created"}
}

func (s *SupplyChainService) Vendor(payload Payload) Payload {
	return Payload{"action": "vendor", "payload": payload}
}

func (s *SupplyChainService) Receiving(payload Payload) Payload {
	return Payload{"action": "receiving", "payload": payload}
}

func (s *SupplyChainService) WarehouseInbound(payload Payload) Payload {
	return Payload{"action": "warehouse_inbound", "payload": payload}
}

func (s *SupplyChainService) WarehouseOutbound(payload Payload) Payload {
	return Payload{"action": "warehouse_outbound", "payload": payload}
}

func (s *SupplyChainService) StockTake() Payload {
	return Payload{"action": "stock_take", "status": "ok"}
}

func (s *SupplyChainService) StockAlert() Payload {
	return Payload{"action": "stock_alert", "status": "ok"}
}

func (s *SupplyChainService) SalesOrder(payload Payload) Payload {
	return Payload{"action": "sales_order", "payload": payload}
}

func (s *SupplyChainService) Quotation(payload Payload) Payload {
	return Payload{"action": "quotation", "payload": payload}
}

func (s *SupplyChainService) Delivery(payload Payload) Payload {
	return Payload{"action": "delivery", "payload": payload}
}

func (s *SupplyChainService) Tracking(code string) Payload {
	return Payload{"action": "tracking", "code": code}
}

func (s *SupplyChainService) ProductionPlan(payload Payload) Payload {
	return Payload{"action": "production_plan", "payload": payload}
}

func (s *SupplyChainService) WorkOrder(payload Payload) Payload {
	return Payload{"action": "work_order", "payload": payload}
}

func (s *SupplyChainService) BOM(payload Payload) Payload {
	return Payload{"action": "bom", "payload": payload}
}

func (s *SupplyChainService) QualityCheck(payload Payload) Payload {
	return Payload{"action": "quality_check", "payload": payload}
}
