package business

// FinanceService stubs ledger, budgeting and expense operations.
type FinanceService struct{}

func NewFinanceService() *FinanceService { return &FinanceService{} }

func (s *FinanceService) Ledger(entry Payload) Payload {
	return Payload{"action": "ledger", "entry": entry}
}

func (s *FinanceService) Voucher(voucher Payload) Payload {
	return Payload{"action": "voucher", "voucher": voucher}
}

func (s *FinanceService) ClosePeriod(period string) Payload {
	return Payload{"action": "close_period", "period": period}
}

func (s *FinanceService) Report(reportType string) Payload {
	return Payload{"action": "report", "type": reportType}
}

func (s *FinanceService) Invoice(data Payload) Payload {
	return Payload{"action": "invoice", "data": data}
}

func (s *FinanceService) Reconciliation(payload Payload) Payload {
	return Payload{"action": "reconciliation", "payload": payload}
}

func (s *FinanceService) BudgetPlan(plan Payload) Payload {
	return Payload{"action": "budget_plan", "plan": plan}
}

func (s *FinanceService) BudgetMonitor(period string) Payload {
	return Payload{"action": "budget_monitor", "period": period}
}

func (s *FinanceService) ExpenseClaim(payload Payload) Payload {
	return Payload{"action": "expense_claim", "payload": payload}
}

func (s *FinanceService) FixedAssetDepreciation(assetID int) Payload {
	return Payload{"action": "depreciation", "asset_id": assetID}
}
