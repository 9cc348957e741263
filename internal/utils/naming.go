package utils

import (
	"time"
)

const listingFilenameLayout = "listing_20060102_150405.txt"

// DefaultListingFilename returns the timestamp-derived output file name used
// when the caller does not choose one, for example listing_20240102_150405.txt.
func DefaultListingFilename(value time.Time) string {
	return value.In(time.Local).Format(listingFilenameLayout)
}
