package model

// LinkStatus represents the status of one link inside a running batch
type LinkStatus string

const (
	// LinkStatusPending means the link has not been attempted yet
	LinkStatusPending LinkStatus = "Pending"

	// LinkStatusDownloading means the library is working on the link
	LinkStatusDownloading LinkStatus = "Downloading"

	// LinkStatusCompleted means the file was produced
	LinkStatusCompleted LinkStatus = "Completed"

	// LinkStatusError means the library reported a failure
	LinkStatusError LinkStatus = "Error"
)

// String returns the string representation of LinkStatus
func (s LinkStatus) String() string {
	return string(s)
}

// IsFinished returns true if the link reached a terminal state
func (s LinkStatus) IsFinished() bool {
	return s == LinkStatusCompleted || s == LinkStatusError
}
