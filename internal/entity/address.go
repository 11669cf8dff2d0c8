package entity

// Address is 1:1 with non-vehicle listings. Vasita listings carry no
// address record.
type Address struct {
	ListingID    string
	Province     string
	District     string
	Neighborhood string
	FullAddress  string
}
