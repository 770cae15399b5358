package domain

// ==================== ENUMS ====================

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ModuleKey partitions the task space; it is the unit of authorization.
type ModuleKey string

const (
	ModuleIAM         ModuleKey = "iam"
	ModuleIntegration ModuleKey = "integration"
	ModuleOffice      ModuleKey = "office"
	ModuleOA          ModuleKey = "oa"
	ModuleHRM         ModuleKey = "hrm"
	ModuleFinance     ModuleKey = "finance"
	ModuleSupply      ModuleKey = "supply"
	ModuleProject     ModuleKey = "project"
	ModuleCRM         ModuleKey = "crm"
	ModuleKnowledge   ModuleKey = "knowledge"
	ModuleMobile      ModuleKey = "mobile"
	ModuleITSM        ModuleKey = "itsm"
	ModuleDeveloper   ModuleKey = "developer"
	ModuleAsset       ModuleKey = "asset"
)

// Modules maps every known module key to its display name.
var Modules = map[ModuleKey]string{
	ModuleIAM:         "IAM & Security",
	ModuleIntegration: "Integration",
	ModuleOffice:      "Office",
	ModuleOA:          "OA",
	ModuleHRM:         "HRM",
	ModuleFinance:     "Finance",
	ModuleSupply:      "Supply Chain",
	ModuleProject:     "Project",
	ModuleCRM:         "CRM & Tickets",
	ModuleKnowledge:   "Knowledge & Learning",
	ModuleMobile:      "Portal & Mobile",
	ModuleITSM:        "ITSM & BI",
	ModuleDeveloper:   "Developer",
	ModuleAsset:       "Asset",
}

// KnownModule reports whether key names a registered module.
func KnownModule(key ModuleKey) bool {
	_, ok := Modules[key]
	return ok
}

// AllModuleKeys returns every registered module key.
func AllModuleKeys() []ModuleKey {
	keys := make([]ModuleKey, 0, len(Modules))
	for k := range Modules {
		keys = append(keys, k)
	}
	return keys
}

// ==================== MODELS ====================

// User is an authenticated principal. CredentialHash is a bcrypt hash;
// GrantedModules is overwritten, never unioned, by admin grants.
type User struct {
	Username       string      `json:"username"`
	CredentialHash string      `json:"-"`
	GrantedModules []ModuleKey `json:"modules"`
	Department     string      `json:"department"`
	Role           Role        `json:"role"`
}

// HasModule reports whether the user is granted the given module.
func (u *User) HasModule(key ModuleKey) bool {
	for _, m := range u.GrantedModules {
		if m == key {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user may perform admin operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session binds an opaque token to an authenticated username.
type Session struct {
	Token    string `json:"-"`
	Username string `json:"username"`
}
