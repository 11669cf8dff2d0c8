package entity

// ListingDetails is the closed set of per-category detail records.
// Exactly one detail record of the matching property type exists per
// listing.
type ListingDetails interface {
	PropertyType() PropertyType
	OwnerID() string
}

// Konut subtypes. Prefabrik listings skip structural metadata entirely.
const (
	KonutTypeDaire        = "daire"
	KonutTypeVilla        = "villa"
	KonutTypeMustakil     = "mustakil"
	KonutTypeBina         = "bina"
	KonutTypePrefabrik    = "prefabrik"
	TicariTypeOtobusHatti = "otobus-hatti"
	TicariTypeTaksiHatti  = "taksi-hatti"
)

type KonutDetails struct {
	ListingID        string
	KonutType        string
	GrossArea        float64
	NetArea          float64
	RoomCount        string
	BuildingAge      int
	Floor            int
	TotalFloors      int
	Heating          string
	HasBalcony       bool
	HasElevator      bool
	IsFurnished      bool
	IsTradeable      bool
	IsCreditEligible bool
}

func (KonutDetails) PropertyType() PropertyType { return PropertyKonut }
func (d KonutDetails) OwnerID() string          { return d.ListingID }

// TicariDetails mirrors KonutDetails minus the amenity flags. Floor,
// total floors and heating are nullable because the otobus-hatti and
// taksi-hatti subtypes carry no structural data at all.
type TicariDetails struct {
	ListingID   string
	TicariType  string
	GrossArea   float64
	NetArea     float64
	RoomCount   string
	BuildingAge int
	Floor       *int
	TotalFloors *int
	Heating     *string
}

func (TicariDetails) PropertyType() PropertyType { return PropertyTicari }
func (d TicariDetails) OwnerID() string          { return d.ListingID }

type ArsaDetails struct {
	ListingID        string
	ArsaType         string
	Area             float64
	Kaks             *float64
	IsTradeable      bool
	IsCreditEligible bool
}

func (ArsaDetails) PropertyType() PropertyType { return PropertyArsa }
func (d ArsaDetails) OwnerID() string          { return d.ListingID }

type VasitaDetails struct {
	ListingID       string
	Brand           string
	Model           string
	SubModel        string
	Kilometers      int
	FuelType        string
	Transmission    string
	Color           string
	HasWarranty     bool
	HasDamageRecord bool
	IsTradeable     bool
}

func (VasitaDetails) PropertyType() PropertyType { return PropertyVasita }
func (d VasitaDetails) OwnerID() string          { return d.ListingID }
