package model

type IssueCategory string

const (
	CategoryFlooding       IssueCategory = "Flooding"
	CategoryRoadIssues     IssueCategory = "RoadIssues"
	CategoryFireHazard     IssueCategory = "FireHazard"
	CategoryPowerOutage    IssueCategory = "PowerOutage"
	CategoryEnvironmental  IssueCategory = "Environmental"
	CategoryPublicSafety   IssueCategory = "PublicSafety"
	CategoryInfrastructure IssueCategory = "Infrastructure"
	CategoryEmergency      IssueCategory = "Emergency"
)

var IssueCategories = []IssueCategory{
	CategoryFlooding, CategoryRoadIssues, CategoryFireHazard, CategoryPowerOutage,
	CategoryEnvironmental, CategoryPublicSafety, CategoryInfrastructure, CategoryEmergency,
}

func (c IssueCategory) Valid() bool { return contains(IssueCategories, c) }

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "Low"
	UrgencyMedium   UrgencyLevel = "Medium"
	UrgencyHigh     UrgencyLevel = "High"
	UrgencyCritical UrgencyLevel = "Critical"
)

var UrgencyLevels = []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

func (u UrgencyLevel) Valid() bool { return contains(UrgencyLevels, u) }

// Priority derives the initial triage priority from the reporter's urgency.
func (u UrgencyLevel) Priority() Priority {
	switch u {
	case UrgencyCritical:
		return PriorityUrgent
	case UrgencyHigh:
		return PriorityHigh
	case UrgencyMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool { return contains(Priorities, p) }

type IssueStatus string

const (
	StatusSubmitted   IssueStatus = "Submitted"
	StatusUnderReview IssueStatus = "UnderReview"
	StatusAssigned    IssueStatus = "Assigned"
	StatusInProgress  IssueStatus = "InProgress"
	StatusOnHold      IssueStatus = "OnHold"
	StatusResolved    IssueStatus = "Resolved"
	StatusClosed      IssueStatus = "Closed"
	StatusRejected    IssueStatus = "Rejected"
)

var IssueStatuses = []IssueStatus{
	StatusSubmitted, StatusUnderReview, StatusAssigned, StatusInProgress,
	StatusOnHold, StatusResolved, StatusClosed, StatusRejected,
}

var issueTransitions = map[IssueStatus][]IssueStatus{
	StatusSubmitted:   {StatusUnderReview, StatusAssigned, StatusInProgress, StatusOnHold, StatusRejected},
	StatusUnderReview: {StatusAssigned, StatusInProgress, StatusOnHold, StatusRejected},
	StatusAssigned:    {StatusInProgress, StatusOnHold, StatusResolved},
	StatusInProgress:  {StatusResolved, StatusOnHold},
	StatusOnHold:      {StatusUnderReview, StatusAssigned, StatusInProgress},
	StatusResolved:    {StatusClosed, StatusInProgress},
}

func (s IssueStatus) Valid() bool { return contains(IssueStatuses, s) }

func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	return contains(issueTransitions[s], next)
}

type IssueUpdateType string

const (
	UpdateStatusChange IssueUpdateType = "StatusChange"
	UpdateComment      IssueUpdateType = "Comment"
	UpdateAssignment   IssueUpdateType = "Assignment"
	UpdateResolution   IssueUpdateType = "Resolution"
)

var IssueUpdateTypes = []IssueUpdateType{UpdateStatusChange, UpdateComment, UpdateAssignment, UpdateResolution}

func (t IssueUpdateType) Valid() bool { return contains(IssueUpdateTypes, t) }

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
