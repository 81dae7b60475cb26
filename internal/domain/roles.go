package domain

// Role роль пользователя системы
type Role string

const (
	UserRoleAdmin         Role = "ADMIN"
	UserRoleConciliator   Role = "CONCILIATOR"
	UserRoleReceptionist  Role = "RECEPTIONIST"
	UserRoleArchive       Role = "ARCHIVE"
	UserRoleRequests      Role = "REQUESTS"
	UserRoleNotifications Role = "NOTIFICATIONS"
)

// DocumentWriterRoles роли, которым разрешено создавать и править документы
var DocumentWriterRoles = []Role{UserRoleAdmin, UserRoleConciliator}

// RoleSet набор ролей пользователя
type RoleSet []Role

// NewRoleSet создает набор из строк, как они приходят в токене
func NewRoleSet(roles ...string) RoleSet {
	set := make(RoleSet, 0, len(roles))
	for _, r := range roles {
		set = append(set, Role(r))
	}
	return set
}

// Has есть ли роль в наборе
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// HasAny есть ли хотя бы одна из ролей
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, role := range roles {
		if s.Has(role) {
			return true
		}
	}
	return false
}

// IsAdmin администратор видит и меняет все
func (s RoleSet) IsAdmin() bool {
	return s.Has(UserRoleAdmin)
}

// Principal аутентифицированный пользователь
type Principal struct {
	UserID int64
	Roles  RoleSet
}

// IsAdmin пользователь - администратор
func (p Principal) IsAdmin() bool {
	return p.Roles.IsAdmin()
}

// CanAccess владелец заявки или администратор
func (p Principal) CanAccess(h *HearingRequest) bool {
	return p.IsAdmin() || h.IsOwnedBy(p.UserID)
}

// CanWriteDocuments пользователь может создавать и править документы
func (p Principal) CanWriteDocuments() bool {
	return p.Roles.HasAny(DocumentWriterRoles...)
}
