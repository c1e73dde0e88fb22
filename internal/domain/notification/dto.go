package notification

// DispatchFailure records one recipient that could not be delivered to.
// A failed send never aborts the rest of the dispatch.
type DispatchFailure struct {
	CompanyID string `json:"company_id"`
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

type DispatchResult struct {
	CompaniesProcessed int               `json:"companies_processed"`
	EmailsSent         int               `json:"emails_sent"`
	EmailsFailed       int               `json:"emails_failed"`
	Failures           []DispatchFailure `json:"failures,omitempty"`
}

// CompanyDigest is the weekly summary rendered into the admin email.
type CompanyDigest struct {
	CompanyName    string
	PeriodStart    string
	PeriodEnd      string
	TotalEmployees int
	FilledSlots    int
	ExpectedSlots  int
	AttendancePct  float64
	PunctualityPct float64
	MorningLates   int
	AfternoonLates int
	Absences       int
	OvertimeHours  string
	TopPunctual    []DigestRank
	TopLate        []DigestRank

	// Incidents lists every employee with at least one lateness or absence
	// in the period; NoIncident carries the remaining names, listed without
	// figures.
	Incidents  []EmployeeIncident
	NoIncident []string
}

type DigestRank struct {
	FullName string
	Shifts   int
	Lates    int
}

type EmployeeIncident struct {
	FullName string
	Lates    int
	Absences int
}

// EmployeeDigest is the weekly per-employee email payload.
type EmployeeDigest struct {
	FullName       string
	CompanyName    string
	PeriodStart    string
	PeriodEnd      string
	DaysAttended   int
	CompleteDays   int
	IncompleteDays int
	Lates          int
	Absences       int
	WorkedHours    string
	OvertimeHours  string
}

// HasIncident reports whether the week contains anything worth an individual
// email. Employees with a clean week only appear by name in the company digest.
func (d EmployeeDigest) HasIncident() bool {
	return d.Lates > 0 || d.Absences > 0
}
