package goal

type GoalStatus string

const (
	Active    GoalStatus = "ACTIVE"
	Completed GoalStatus = "COMPLETED"
)

type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	default:
		return false
	}
}

type BitStatus string

const (
	BitPending BitStatus = "pending"
	BitPaid    BitStatus = "paid"
)
