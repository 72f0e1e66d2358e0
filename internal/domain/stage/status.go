package stage

// Status represents the lifecycle state of a construction stage.
type Status string

const (
	StatusNew     Status = "NEW"
	StatusPlanned Status = "PLANNED"
	StatusDeleted Status = "DELETED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusPlanned, StatusDeleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
