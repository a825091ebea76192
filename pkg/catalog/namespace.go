package catalog

// Namespace is a category partition of the message catalog, orthogonal to
// language. The set is open: it is keyed by string name so new namespaces can
// be added without touching this package.
type Namespace string

const (
	NamespaceValidation         Namespace = "validation"
	NamespaceUser               Namespace = "user"
	NamespaceAuth               Namespace = "auth"
	NamespaceCommon             Namespace = "common"
	NamespaceOrganization       Namespace = "organization"
	NamespaceAttendance         Namespace = "attendance"
	NamespaceOrganizationMember Namespace = "organization_member"
)

func (n Namespace) String() string { return string(n) }

// KnownNamespaces returns the namespaces loaded by default.
func KnownNamespaces() []Namespace {
	return []Namespace{
		NamespaceValidation,
		NamespaceUser,
		NamespaceAuth,
		NamespaceCommon,
		NamespaceOrganization,
		NamespaceAttendance,
		NamespaceOrganizationMember,
	}
}
