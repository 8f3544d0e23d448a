// Package location holds the store catalog, the haversine distance helpers,
// and the observable shopping-location selection store shared by all UI
// surfaces of a browser session.
package location

// Location describes one restaurant location. The catalog is fixed reference
// data created at process start and never mutated.
type Location struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Address    string  `json:"address"`
	Hours      string  `json:"hours"`
	PlaceID    string  `json:"placeId,omitempty"`
	MenuPath   string  `json:"menuPath,omitempty"`
	ToastURL   string  `json:"toastUrl,omitempty"`
	DoorDash   string  `json:"doorDash,omitempty"`
	GrubHub    string  `json:"grubHub,omitempty"`
	UberEats   string  `json:"uberEats,omitempty"`
}

// Point is the coordinate projection of a Location used for nearest-store
// resolution.
type Point struct {
	Slug      string  `json:"slug"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Catalog lists all locations. Order matters: the first entry is the default
// selection, and Nearest breaks exact distance ties in catalog order.
var Catalog = []Location{
	{
		Slug:       "mission-valley",
		Name:       "Mission Valley",
		Phone:      "619-269-2828",
		Latitude:   32.777,
		Longitude:  -117.157,
		City:       "San Diego",
		State:      "CA",
		PostalCode: "92108",
		Address:    "4242 Camino Del Rio N, San Diego, CA 92108",
		Hours:      "Daily: 7AM - Midnight",
		MenuPath:   "/menu/mission-valley",
		DoorDash:   "https://www.doordash.com/store/crack-taco-shop-san-diego-841981/44392947/",
		GrubHub:    "https://www.grubhub.com/restaurant/crack-taco-shop-4242-camino-del-rio-n-ste-28-san-diego/1397766",
		UberEats:   "https://www.ubereats.com/store/crack-taco-shop-mission-valley/bulDXzA9SAKBZf9Z5Rir9g",
	},
	{
		Slug:       "seaport-village",
		Name:       "Seaport Village",
		Phone:      "619-326-8497",
		Latitude:   32.7089,
		Longitude:  -117.1705,
		City:       "San Diego",
		State:      "CA",
		PostalCode: "92101",
		Address:    "817 W. Harbor Dr, San Diego, CA 92101",
		Hours:      "Open Every Day 7AM-2AM",
		MenuPath:   "/menu/seaport-village",
		DoorDash:   "https://www.doordash.com/store/crack-taco-seaport-san-diego-26279990/74477548/",
		GrubHub:    "https://www.grubhub.com/restaurant/crack-taco-shop-817-w-harbor-dr-san-diego/11891120",
		UberEats:   "https://www.ubereats.com/store/crack-taco-shop-817-west-harbor-drive/7KsFzrsEU3y4XemmvflF6g",
	},
	{
		Slug:       "encinitas",
		Name:       "Encinitas",
		Phone:      "760-230-1649",
		Latitude:   33.0657,
		Longitude:  -117.2897,
		City:       "Encinitas",
		State:      "CA",
		PostalCode: "92024",
		Address:    "106 Leucadia Blvd, Encinitas, CA 92024",
		Hours:      "Open Every Day 8AM-11PM",
		MenuPath:   "/menu/encinitas",
		ToastURL:   "https://www.toasttab.com/local/order/crack-taco-encinitas-110-leucadia-boulevard/r-5d008fa1-2fb2-4e56-8195-8dd5d1338ed7",
		DoorDash:   "https://www.doordash.com/store/crack-taco-shop-encinitas-37348759/86793947/",
		GrubHub:    "https://www.grubhub.com/restaurant/crack-taco-shop-106-leucadia-boulevard-encinitas/13161768",
	},
	{
		Slug:       "coronado",
		Name:       "Coronado",
		Phone:      "619-673-8887",
		Latitude:   32.6926,
		Longitude:  -117.1785,
		City:       "Coronado",
		State:      "CA",
		PostalCode: "92118",
		Address:    "1009 Orange Ave. Coronado, CA 92118",
		Hours:      "Open from 8AM-2AM everyday",
		MenuPath:   "/menu/coronado",
		ToastURL:   "https://www.toasttab.com/local/order/crack-taco-coronado-1009-orange-avenue/r-67bc00f3-085b-42d4-a68e-33cf00d9485c",
	},
}

// BySlug looks up a catalog location by its slug.
func BySlug(slug string) (Location, bool) {
	for _, loc := range Catalog {
		if loc.Slug == slug {
			return loc, true
		}
	}
	return Location{}, false
}

// Default returns the fallback location used when no valid selection exists.
func Default() Location {
	return Catalog[0]
}

// Points returns the coordinate projection of the catalog, in catalog order.
func Points() []Point {
	pts := make([]Point, len(Catalog))
	for i, loc := range Catalog {
		pts[i] = Point{Slug: loc.Slug, Latitude: loc.Latitude, Longitude: loc.Longitude}
	}
	return pts
}
