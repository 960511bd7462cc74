package model

//go:generate go run github.com/dmarkham/enumer -type ArtworkStatus,ProjectStatus,UserRole -transform snake -trimprefix ArtworkStatus,ProjectStatus,UserRole -json -yaml -sql -output status_enumer.go

// ArtworkStatus tracks where an artwork physically is.
type ArtworkStatus int

const (
	ArtworkStatusAvailable ArtworkStatus = iota
	ArtworkStatusOnDisplay
	ArtworkStatusStored
	ArtworkStatusOnLoan
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus int

const (
	ProjectStatusPlanning ProjectStatus = iota
	ProjectStatusActive
	ProjectStatusCompleted
	ProjectStatusCancelled
)

// UserRole is the access level of a back-office user.
type UserRole int

const (
	UserRoleAdmin UserRole = iota
	UserRoleUser
	UserRoleViewer
)

func (s ArtworkStatus) Valid() bool { return s.IsAArtworkStatus() }
func (s ProjectStatus) Valid() bool { return s.IsAProjectStatus() }
func (r UserRole) Valid() bool      { return r.IsAUserRole() }
