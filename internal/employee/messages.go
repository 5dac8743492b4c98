package employee

// MinimumStartLeadDays is how far ahead of today a contract may start at the earliest.
const MinimumStartLeadDays = 5

// Messages returned to clients. They are part of the API and must not change.
const (
	MsgWorkHoursRange          = "Number of work hours per week must be between 40 and 60."
	MsgTimeOffRange            = "Number of off days per year, should not be less than 9."
	MsgProbationRange          = "Probation period should not be greater than 30 days."
	MsgNoticeDuringRange       = "Notice period during probation must be non-negative."
	MsgNoticeAfterRange        = "Notice period after probation must be non-negative."
	MsgContractStartLeadTime   = "Contract start date should be at least 5 days ahead from today's date."
	MsgEmploymentTerms         = "Employment terms can be either Definite or Indefinite."
	MsgContractEndDateRequired = "For definite employment terms, contract end date must be provided."
	MsgContractEndAfterStart   = "Contract end date should be after contract start date."
	MsgNoticeAfterBelowDuring  = "Notice period after probation should be equal to or greater than during probation."
)

// rangeMessages replaces the generic validator text for range-tagged fields.
var rangeMessages = map[string]string{
	"workHoursPerWeek":            MsgWorkHoursRange,
	"timeOff":                     MsgTimeOffRange,
	"probationPeriod":             MsgProbationRange,
	"noticePeriodDuringProbation": MsgNoticeDuringRange,
	"noticePeriodAfterProbation":  MsgNoticeAfterRange,
}
