package stage

// DurationUnit selects how a stage's duration is expressed.
type DurationUnit string

const (
	UnitHours DurationUnit = "HOURS"
	UnitDays  DurationUnit = "DAYS"
	UnitWeeks DurationUnit = "WEEKS"
)

// DefaultUnit is used whenever a unit is absent or unrecognized.
const DefaultUnit = UnitDays

// IsValid returns true if the unit is one of the defined constants.
func (u DurationUnit) IsValid() bool {
	switch u {
	case UnitHours, UnitDays, UnitWeeks:
		return true
	default:
		return false
	}
}

// OrDefault returns u when it is valid and DefaultUnit otherwise.
func (u DurationUnit) OrDefault() DurationUnit {
	if u.IsValid() {
		return u
	}
	return DefaultUnit
}

// String implements fmt.Stringer.
func (u DurationUnit) String() string {
	return string(u)
}
