package entity

import "time"

// Photo is one gallery image of a listing. StorageID is the key shared
// verbatim with the remote object store; it joins the two systems.
// OrderIndex is dense and 0-based within a listing, and the photo at
// index 0 is the cover.
type Photo struct {
	StorageID  string
	ListingID  string
	URL        string
	OrderIndex int
	IsCover    bool
	CreatedAt  time.Time
}
