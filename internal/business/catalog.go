package business

import "github.com/atlaserp/backend/internal/domain"

// Catalog builds the dispatchable task table: one descriptor per exposed
// business operation, tagged with the module that authorizes it. Task
// arguments are fixed demo payloads; the work items stay zero-argument so
// the dispatcher treats them as opaque.
func Catalog() []domain.TaskDescriptor {
	iam := NewIAMService()
	security := NewSecurityService()
	integration := NewIntegrationService()
	document := NewDocumentService()
	comms := NewCommunicationService()
	calendar := NewCalendarTaskService()
	oa := NewOAService()
	hrm := NewHRMService()
	finance := NewFinanceService()
	supply := NewSupplyChainService()
	project := NewProjectService()
	crm := NewCRMService()
	ticket := NewTicketService()
	knowledge := NewKnowledgeService()
	learning := NewLearningService()
	mobile := NewMobileService()
	portal := NewPortalService()
	itsm := NewITSMService()
	bi := NewBIService()
	developer := NewDeveloperService()
	asset := NewAssetService()

	entry := func(id string, module domain.ModuleKey, call func() Payload) domain.TaskDescriptor {
		return domain.TaskDescriptor{
			ID:     id,
			Module: module,
			Work:   func() (any, error) { return call(), nil },
		}
	}

	return []domain.TaskDescriptor{
		entry("iam:create_user", domain.ModuleIAM, func() Payload { return iam.CreateUser(Payload{"username": "web"}) }),
		entry("iam:sync_ldap", domain.ModuleIAM, func() Payload { return iam.SyncLDAP() }),
		entry("security:waf", domain.ModuleIAM, func() Payload { return security.WAFFilter(Payload{"path": "/"}) }),
		entry("integration:kafka", domain.ModuleIntegration, func() Payload { return integration.KafkaEnqueue("events", Payload{"source": "ui"}) }),
		entry("document:edit", domain.ModuleOffice, func() Payload { return document.Edit(1, "draft") }),
		entry("communication:chat", domain.ModuleOffice, func() Payload { return comms.Chat("general", "hello") }),
		entry("calendar:remind", domain.ModuleOffice, func() Payload { return calendar.Remind(101) }),
		entry("oa:approval", domain.ModuleOA, func() Payload { return oa.GenericApproval(Payload{"type": "leave"}) }),
		entry("hrm:payroll", domain.ModuleHRM, func() Payload { return hrm.PayrollRun("2025-12") }),
		entry("finance:expense", domain.ModuleFinance, func() Payload { return finance.ExpenseClaim(Payload{"employee_id": 1, "total": 99.9}) }),
		entry("supply:po", domain.ModuleSupply, func() Payload { return supply.PurchaseOrder(Payload{"vendor": "ACME"}) }),
		entry("project:gantt", domain.ModuleProject, func() Payload { return project.Gantt(5) }),
		entry("crm:pipeline", domain.ModuleCRM, func() Payload { return crm.Pipeline("proposal") }),
		entry("ticket:create", domain.ModuleCRM, func() Payload { return ticket.Ticket(Payload{"title": "VPN"}) }),
		entry("knowledge:search", domain.ModuleKnowledge, func() Payload { return knowledge.Search("SSO") }),
		entry("learning:exam", domain.ModuleKnowledge, func() Payload { return learning.Exam(Payload{"course_id": 7}) }),
		entry("mobile:approve", domain.ModuleMobile, func() Payload { return mobile.Approve(12) }),
		entry("portal:todo", domain.ModuleMobile, func() Payload { return portal.TodoCenter(1) }),
		entry("itsm:monitor", domain.ModuleITSM, func() Payload { return itsm.Monitor(Payload{"cpu": 70}) }),
		entry("bi:dashboard", domain.ModuleITSM, func() Payload { return bi.Dashboard(Payload{"scope": "company"}) }),
		entry("developer:form", domain.ModuleDeveloper, func() Payload { return developer.FormDesigner(Payload{"fields": []any{}}) }),
		entry("asset:audit", domain.ModuleAsset, func() Payload { return asset.Audit(2) }),
	}
}
