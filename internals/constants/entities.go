package constants

// Entity type names written to audit_logs.entity_type and file_uploads.entity_type.
const (
	EntityAppointment   = "Appointment"
	EntityIssueReport   = "IssueReport"
	EntityNewsArticle   = "NewsArticle"
	EntityTouristSpot   = "TouristSpot"
	EntityPublicProject = "PublicProject"
	EntityUser          = "User"
)

// Audit actions.
const (
	ActionStatusChange        = "StatusChange"
	ActionPaymentStatusChange = "PaymentStatusChange"
	ActionCancel              = "Cancel"
)

// Storage folders used by the features.
const (
	FolderNews         = "news"
	FolderUsers        = "users"
	FolderReports      = "reports"
	FolderTouristSpots = "tourist-spots"
)
