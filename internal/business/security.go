package business

// SecurityService stubs perimeter and data-security operations.
type SecurityService struct{}

func NewSecurityService() *SecurityService { return &SecurityService{} }

func (s *SecurityService) WAFFilter(request Payload) Payload {
	return Payload{"action": "waf_filter", "request": request, "status": "ok"}
}

func (s *SecurityService) VPNConnect(userID int) Payload {
	return Payload{"action": "vpn_connect", "user_id": userID, "status": "connected"}
}

func (s *SecurityService) IPWhitelist(ip string) Payload {
	return Payload{"action": "ip_whitelist", "ip": ip}
}

func (s *SecurityService) Encrypt(data, method string) Payload {
	return Payload{"action": "encrypt", "method": method, "size": len(data)}
}

func (s *SecurityService) Mask(data string) Payload {
	return Payload{"action": "mask", "size": len(data)}
}

func (s *SecurityService) SecurityAlert(event string) Payload {
	return Payload{"action": "security_alert", "event": event}
}

func (s *SecurityService) RiskDetection(signal string) Payload {
	return Payload{"action": "risk_detection", "signal": signal}
}

func (s *SecurityService) ComplianceReport(period string) Payload {
	return Payload{"action": "compliance_report", "period": period}
}
