package reports

import (
	"github.com/mr-tron/base58"
)

var statusNames = map[int64]string{
	StatusPending:       "Pending",
	StatusInvestigating: "Investigating",
	StatusVerified:      "Verified",
	StatusRejected:      "Rejected",
	StatusClosed:        "Closed",
}

// StatusName returns a human-readable name of the status code, "Unknown" for
// codes outside of the defined range.
func StatusName(status int64) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "Unknown"
}

// ContentID returns a base58 rendering of the report content digest. It is
// used as a short stable reference to the content in logs and user interfaces.
func (res *ReportsReportInfo) ContentID() string {
	return base58.Encode(res.ContentHash.BytesBE())
}
