package usecase

import (
	"strconv"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

// RawFields is the untyped category-specific part of a listing payload,
// as decoded from the admin panel's JSON body.
type RawFields map[string]interface{}

func (f RawFields) str(key string) string {
	if v, ok := f[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// num returns the field as a float64 and whether it was present and
// numeric. JSON numbers decode as float64; numeric strings from form
// payloads are accepted too.
func (f RawFields) num(key string) (float64, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		if n == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

func (f RawFields) boolean(key string) bool {
	if v, ok := f[key]; ok {
		switch b := v.(type) {
		case bool:
			return b
		case string:
			return b == "true" || b == "1" || b == "evet"
		case float64:
			return b != 0
		}
	}
	return false
}

// Validation messages surfaced to the admin panel. They name the missing
// concept, not the field, and are part of the API contract.
const (
	msgKonutTypeRequired  = "Lütfen konut tipini seçin"
	msgTicariTypeRequired = "Lütfen işyeri tipini seçin"
	msgArsaTypeRequired   = "Lütfen arsa tipini seçin"
	msgRoomCountRequired  = "Lütfen oda sayısını seçin"
	msgAreaRequired       = "Lütfen metrekare bilgisini girin"
	msgBuildingInfoNeeded = "Lütfen bina bilgilerini eksiksiz doldurun"
	msgHeatingRequired    = "Lütfen ısıtma tipini seçin"
	msgFuelTypeRequired   = "Lütfen yakıt tipini seçin"
)

// MapDetails maps the raw category fields of a payload onto the typed
// detail record for propertyType. It is pure: a validation failure means
// no detail row is ever written.
func MapDetails(listingID string, propertyType entity.PropertyType, fields RawFields) (entity.ListingDetails, error) {
	switch propertyType {
	case entity.PropertyKonut:
		return mapKonutDetails(listingID, fields)
	case entity.PropertyTicari:
		return mapTicariDetails(listingID, fields)
	case entity.PropertyArsa:
		return mapArsaDetails(listingID, fields)
	case entity.PropertyVasita:
		return mapVasitaDetails(listingID, fields)
	}
	return nil, entity.NewValidationError("Lütfen ilan kategorisini seçin")
}

func mapKonutDetails(listingID string, fields RawFields) (entity.ListingDetails, error) {
	konutType := fields.str("konut_type")
	if konutType == "" {
		return nil, entity.NewValidationError(msgKonutTypeRequired)
	}

	d := entity.KonutDetails{
		ListingID:        listingID,
		KonutType:        konutType,
		Heating:          fields.str("heating"),
		HasBalcony:       fields.boolean("balcony"),
		HasElevator:      fields.boolean("elevator"),
		IsFurnished:      fields.boolean("furnished"),
		IsTradeable:      fields.boolean("tradeable"),
		IsCreditEligible: fields.boolean("credit_eligible"),
	}

	// Prefabrik listings intentionally skip structural metadata; the
	// structural fields are force-set to neutral defaults.
	if konutType == entity.KonutTypePrefabrik {
		d.GrossArea = 0
		d.NetArea = 0
		d.RoomCount = "1+0"
		d.BuildingAge = 0
		d.Floor = 0
		d.TotalFloors = 1
		return d, nil
	}

	gross, ok := fields.num("gross_sqm")
	if !ok {
		return nil, entity.NewValidationError(msgAreaRequired)
	}
	d.GrossArea = gross
	if net, ok := fields.num("net_sqm"); ok {
		d.NetArea = net
	}

	d.RoomCount = fields.str("room_count")
	if d.RoomCount == "" {
		return nil, entity.NewValidationError(msgRoomCountRequired)
	}

	age, okAge := fields.num("building_age")
	floor, okFloor := fields.num("floor")
	total, okTotal := fields.num("total_floors")
	if !okAge || !okFloor || !okTotal {
		return nil, entity.NewValidationError(msgBuildingInfoNeeded)
	}
	d.BuildingAge = int(age)
	d.Floor = int(floor)
	d.TotalFloors = int(total)

	if d.Heating == "" {
		return nil, entity.NewValidationError(msgHeatingRequired)
	}
	return d, nil
}

func mapTicariDetails(listingID string, fields RawFields) (entity.ListingDetails, error) {
	ticariType := fields.str("ticari_type")
	if ticariType == "" {
		return nil, entity.NewValidationError(msgTicariTypeRequired)
	}

	d := entity.TicariDetails{
		ListingID:  listingID,
		TicariType: ticariType,
	}

	// Bus-line and taxi-line businesses are licenses, not premises; they
	// carry no structural data.
	if ticariType == entity.TicariTypeOtobusHatti || ticariType == entity.TicariTypeTaksiHatti {
		d.GrossArea = 0
		d.NetArea = 0
		d.RoomCount = ""
		d.BuildingAge = 0
		d.Floor = nil
		d.TotalFloors = nil
		d.Heating = nil
		return d, nil
	}

	gross, ok := fields.num("gross_sqm")
	if !ok {
		return nil, entity.NewValidationError(msgAreaRequired)
	}
	d.GrossArea = gross
	if net, ok := fields.num("net_sqm"); ok {
		d.NetArea = net
	}
	d.RoomCount = fields.str("room_count")

	age, okAge := fields.num("building_age")
	floor, okFloor := fields.num("floor")
	total, okTotal := fields.num("total_floors")
	if !okAge || !okFloor || !okTotal {
		return nil, entity.NewValidationError(msgBuildingInfoNeeded)
	}
	d.BuildingAge = int(age)
	floorInt, totalInt := int(floor), int(total)
	d.Floor = &floorInt
	d.TotalFloors = &totalInt

	if heating := fields.str("heating"); heating != "" {
		d.Heating = &heating
	}
	return d, nil
}

func mapArsaDetails(listingID string, fields RawFields) (entity.ListingDetails, error) {
	arsaType := fields.str("arsa_type")
	if arsaType == "" {
		return nil, entity.NewValidationError(msgArsaTypeRequired)
	}

	area, ok := fields.num("sqm")
	if !ok {
		return nil, entity.NewValidationError(msgAreaRequired)
	}

	d := entity.ArsaDetails{
		ListingID:        listingID,
		ArsaType:         arsaType,
		Area:             area,
		IsTradeable:      fields.boolean("tradeable"),
		IsCreditEligible: fields.boolean("credit_eligible"),
	}
	// Floor-area ratio is optional for land.
	if kaks, ok := fields.num("kaks"); ok {
		d.Kaks = &kaks
	}
	return d, nil
}

func mapVasitaDetails(listingID string, fields RawFields) (entity.ListingDetails, error) {
	// Fuel type is mandatory for every vehicle subtype, no relaxation.
	fuelType := fields.str("fuel_type")
	if fuelType == "" {
		return nil, entity.NewValidationError(msgFuelTypeRequired)
	}

	d := entity.VasitaDetails{
		ListingID:       listingID,
		Brand:           fields.str("brand"),
		Model:           fields.str("model"),
		SubModel:        fields.str("sub_model"),
		FuelType:        fuelType,
		Transmission:    fields.str("transmission"),
		Color:           fields.str("color"),
		HasWarranty:     fields.boolean("warranty"),
		HasDamageRecord: fields.boolean("damage_record"),
		IsTradeable:     fields.boolean("tradeable"),
	}
	if km, ok := fields.num("km"); ok {
		d.Kilometers = int(km)
	}
	return d, nil
}
