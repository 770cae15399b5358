package business

// IAMService stubs account, auth, permission, org and audit operations.
type IAMService struct{}

func NewIAMService() *IAMService { return &IAMService{} }

func (s *IAMService) CreateUser(payload Payload) Payload {
	return Payload{"action": "create_user", "status": "ok", "user": payload}
}

func (s *IAMService) DeleteUser(userID int) Payload {
	return Payload{"action": "delete_user", "status": "ok", "user_id": userID}
}

func (s *IAMService) BulkImportUsers(users []Payload) Payload {
	return Payload{"action": "bulk_import", "count": len(users)}
}

func (s *IAMService) SyncLDAP() Payload {
	return Payload{"action": "ldap_sync", "status": "queued"}
}

func (s *IAMService) FreezeAccount(userID int) Payload {
	return Payload{"action": "freeze", "user_id": userID}
}

func (s *IAMService) UnfreezeAccount(userID int) Payload {
	return Payload{"action": "unfreeze", "user_id": userID}
}

func (s *IAMService) SSOLogin(token string) Payload {
	return Payload{"action": "sso", "token": token, "status": "ok"}
}

func (s *IAMService) OAuth2Authorize(clientID string) Payload {
	return Payload{"action": "oauth2_authorize", "client_id": clientID, "status": "ok"}
}

func (s *IAMService) SAMLResponse(assertion string) Payload {
	return Payload{"action": "saml", "assertion": assertion, "status": "ok"}
}

func (s *IAMService) MFAVerify(userID int, method string) Payload {
	return Payload{"action": "mfa_verify", "user_id": userID, "method": method, "status": "ok"}
}

func (s *IAMService) AssignRole(userID, roleID int) Payload {
	return Payload{"action": "assign_role", "user_id": userID, "role_id": roleID}
}

func (s *IAMService) DefineABACPolicy(name, expression string) Payload {
	return Payload{"action": "define_abac_policy", "name": name, "expression": expression}
}

func (s *IAMService) SetDataPermission(userID int, scope string) Payload {
	return Payload{"action": "data_permission", "user_id": userID, "scope": scope}
}

func (s *IAMService) CreateDepartment(payload Payload) Payload {
	return Payload{"action": "create_department", "department": payload}
}

func (s *IAMService) LogOperation(userID int, operation string) Payload {
	return Payload{"action": "operation_log", "user_id": userID, "operation": operation}
}

func (s *IAMService) AuditPermissionChange(change Payload) Payload {
	return Payload{"action": "permission_audit", "change": change}
}
