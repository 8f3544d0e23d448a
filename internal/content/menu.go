package content

// MenuItem is a single priced dish. Prices are display strings since stores
// quote them differently across ordering providers.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Badge       string `json:"badge,omitempty"`
}

type MenuGroup struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

type MenuSection struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Groups []MenuGroup `json:"groups"`
}

type MenuNavEntry struct {
	SectionID string `json:"sectionId"`
	Label     string `json:"label"`
}

// PriceSource says where a store's authoritative prices live.
type PriceSource string

const (
	PriceSourceManual   PriceSource = "manual"
	PriceSourceMenuLink PriceSource = "location-menu-link"
)

// LocationMenu is the menu shown for one store.
type LocationMenu struct {
	Sections       []MenuSection  `json:"sections"`
	Nav            []MenuNavEntry `json:"nav"`
	Notes          []string       `json:"notes"`
	PriceSource    PriceSource    `json:"priceSource"`
	LocalPricing   bool           `json:"hasLocationSpecificPricing"`
	PrintedMenuURL string         `json:"printedMenuUrl,omitempty"`
}

const (
	bowlBuild       = "Served over spring mix, rice & beans and topped with cheddar cheese, Cali pico, roasted corn, and cotija cheese."
	quesadillaSides = "Side of sour cream, guacamole, pico de gallo."
)

var missionValleySections = []MenuSection{
	{
		ID:    "tacos",
		Title: "Tacos",
		Groups: []MenuGroup{
			{
				Title: "Meat",
				Items: []MenuItem{
					{Name: "Crack (Tri-Tip) Taco", Description: "Tri-tip, onion, guacamole, cilantro", Price: "$5.25", Badge: "Signature"},
					{Name: "Al Pastor Taco", Description: "Onion, guacamole, cilantro", Price: "$4.25"},
					{Name: "Pollo Asada Taco", Description: "Onion, guacamole, cilantro", Price: "$4.25"},
					{Name: "Birria Taco", Description: "Shredded beef, onions, cilantro", Price: "$5.15"},
					{Name: "Mulitas Taco - Pork, Chicken / Beef", Description: "Pork/chicken/beef, guacamole, onions, cilantro, melted cheese on fresh corn tortillas", Price: "$7.95"},
					{Name: "8 Rolled Tacos", Description: "Cheese, guacamole & lettuce", Price: "$13.95"},
					{Name: "5 Rolled Tacos", Description: "Cheese, guacamole & lettuce", Price: "$10.95"},
					{Name: "3 Rolled Tacos", Description: "Cheese, guacamole & lettuce", Price: "$8.95"},
				},
			},
			{
				Title: "Seafood",
				Items: []MenuItem{
					{Name: "IPA Battered Taco", Description: "Cabbage, pico, chipotle", Price: "$4.95"},
					{Name: "Grilled Alaskan Fish Taco", Description: "Cabbage, pico, chipotle", Price: "$4.95"},
					{Name: "Baja Shrimp Taco", Description: "Cabbage, pico, chipotle", Price: "$4.95"},
				},
			},
			{
				Title: "Veggie",
				Items: []MenuItem{
					{Name: "Potato Taco", Description: "Lettuce, pico, cotija", Price: "$4.25"},
					{Name: "Grilled Cactus Taco", Description: "Onion, guacamole, cilantro", Price: "$5.15"},
				},
			},
		},
	},
	{
		ID:    "burritos",
		Title: "Burritos",
		Groups: []MenuGroup{
			{
				Title: "Meat",
				Items: []MenuItem{
					{Name: "Surf & Turf Burrito", Description: "Shrimp, tri-tip, Cali pico, guacamole, rice, cheese", Price: "$16.95"},
					{Name: "Crackafornia Burrito", Description: "Fries, guacamole, cheese, sour cream, tri-tip", Price: "$14.95"},
					{Name: "Crack (Tri-Tip) Burrito", Description: "Guacamole, California pico", Price: "$15.25"},
					{Name: "Al Pastor (Adobado) Burrito", Description: "Pina, guacamole, California pico", Price: "$13.95"},
					{Name: "Pollo Asada Burrito", Description: "Guacamole, California pico", Price: "$13.95"},
					{Name: "Keto Burrito", Description: "Tri-tip, sour cream, guacamole, California pico", Price: "$16.45"},
					{Name: "Birria Burrito", Description: "Onion, cilantro with consomme", Price: "$15.95"},
				},
			},
			{
				Title: "Seafood",
				Items: []MenuItem{
					{Name: "IPA Battered Fish Burrito", Description: "Chipotle creme, cabbage, cilantro, California pico", Price: "$15.95"},
					{Name: "Grilled Alaskan Fish Burrito", Description: "Chipotle creme, cabbage, cilantro, California pico", Price: "$14.95"},
					{Name: "Baja Shrimp Burrito", Description: "Chipotle creme, cabbage, cilantro, California pico", Price: "$15.95"},
				},
			},
			{
				Title: "Veggie",
				Items: []MenuItem{
					{Name: "Veggie Burrito", Description: "Red peppers, rice, beans, cheese corn, guacamole", Price: "$13.95"},
					{Name: "Bean & Cheese Burrito", Description: "Beans, cheddar cheese", Price: "$8.95"},
				},
			},
		},
	},
	{
		ID:    "breakfast",
		Title: "Breakfast",
		Groups: []MenuGroup{
			{
				Title: "All Day",
				Items: []MenuItem{
					{Name: "Crack (Tri-Tip) & Eggs Burrito", Description: "Eggs, potatoes, cheese", Price: "$15.95"},
					{Name: "Sausage Burrito", Description: "Eggs, potatoes, cheese", Price: "$14.95"},
					{Name: "Bacon Burrito", Description: "Eggs, potatoes, cheese", Price: "$14.95"},
					{Name: "Ham Burrito", Description: "Eggs, potatoes, cheese", Price: "$13.95"},
					{Name: "Potato Burrito", Description: "Eggs, potatoes, cheese", Price: "$12.95"},
					{Name: "Machaca Burrito", Description: "Beef, eggs, pico", Price: "$13.95"},
					{Name: "Chorizo Burrito", Description: "Chorizo, eggs, cheese", Price: "$14.95"},
					{Name: "Breakfast Crack (Tri-Tip) Bowl", Description: "Eggs, potatoes, cheese", Price: "$14.95"},
					{Name: "Breakfast Sausage Bowl", Description: "Eggs, potatoes, cheese", Price: "$12.95"},
					{Name: "Breakfast Bacon Bowl", Description: "Eggs, potatoes, cheese", Price: "$12.95"},
					{Name: "Breakfast Potato Bowl", Description: "Eggs, potatoes, cheese", Price: "$12.95"},
				},
			},
		},
	},
	{
		ID:    "bowls",
		Title: "Bowls",
		Groups: []MenuGroup{
			{
				Title: "Meat",
				Items: []MenuItem{
					{Name: "Crack (Tri-Tip) Bowl", Description: bowlBuild, Price: "$15.95"},
					{Name: "Al Pastor Bowl", Description: bowlBuild, Price: "$13.95"},
					{Name: "Pollo Asada Bowl", Description: bowlBuild, Price: "$13.95"},
				},
			},
			{
				Title: "Seafood",
				Items: []MenuItem{
					{Name: "Baja Shrimp Bowl", Description: bowlBuild, Price: "$15.95"},
				},
			},
			{
				Title: "Veggie",
				Items: []MenuItem{
					{Name: "Grilled Cactus Bowl", Description: bowlBuild, Price: "$13.95"},
				},
			},
		},
	},
	{
		ID:    "quesadillas",
		Title: "Quesadillas",
		Groups: []MenuGroup{
			{
				Title: "Favorites",
				Items: []MenuItem{
					{Name: "Crack (Tri-Tip) Quesadilla", Description: quesadillaSides, Price: "$15.45"},
					{Name: "Al Pastor Quesadilla", Description: quesadillaSides, Price: "$14.95"},
					{Name: "Queso Birria", Description: "Guacamole, sour cream", Price: "$15.45"},
					{Name: "Pollo Asada Quesadilla", Description: quesadillaSides, Price: "$14.95"},
					{Name: "Baja Shrimp Quesadilla", Description: quesadillaSides, Price: "$15.55"},
					{Name: "Cheese Quesadilla", Description: quesadillaSides, Price: "$8.95"},
					{Name: "Green Chile Grilled Quesadilla", Description: quesadillaSides, Price: "$10.95"},
				},
			},
		},
	},
	{
		ID:    "nachos-fries",
		Title: "Nachos, Fries & More",
		Groups: []MenuGroup{
			{
				Title: "Shareables",
				Items: []MenuItem{
					{Name: "Mexican Street Corn Nachos", Description: "Nacho cheese, corn, cotija, Valentina", Price: "$14.95"},
					{Name: "Crack Tri-Tip Nachos", Description: "Nacho & cheddar cheese, beans, chipotle cream, guacamole, jalapenos", Price: "$16.95"},
					{Name: "Crack Tri-Tip Fries", Description: "Cardiff crack, guacamole, cheddar cheese, creme, french fries, Cali pico", Price: "$16.95"},
					{Name: "Al Pastor Fries", Description: "Guacamole, cheese, sour cream, chipotle cream", Price: "$16.95"},
					{Name: "Pollo Asado Fries", Description: "Guacamole, cheese, sour cream, chipotle cream", Price: "$16.95"},
					{Name: "Veggie Nachos", Description: "Mexican corn, nacho & cheddar cheese, guacamole, Cali pico, jalapenos", Price: "$14.95"},
					{Name: "Crack (Tri-Tip) Sandwich", Description: "Cardiff crack tri-tip, BBQ sauce, bun, served with fries", Price: "$15.95"},
				},
			},
		},
	},
	{
		ID:    "salads",
		Title: "Salads",
		Groups: []MenuGroup{
			{
				Title: "Signature Salads",
				Items: []MenuItem{
					{Name: "Roast Pepper Caesar Salad", Description: "Romaine lettuce, cheese, roasted peppers, croutons", Price: "$13.95"},
					{Name: "Chipotle Salad", Description: "Roasted corn, lettuce, tomato, onion, cheddar cheese", Price: "$13.95"},
					{Name: "Baja Caesar Salad", Description: "Romaine lettuce, Oaxaca, cheese, croutons, cilantro, roast pepper, caesar", Price: "$12.95"},
					{Name: "House Chicken Salad", Description: "Chicken, avocado, Italian dressing, spring mix", Price: "$16.95"},
				},
			},
			{
				Title: "Add Ons",
				Items: []MenuItem{
					{Name: "Add Shrimp", Price: "$6.95"},
					{Name: "Add Pollo", Price: "$4.95"},
					{Name: "Add Crack/Tri-Tip", Price: "$6.95"},
					{Name: "Add Al Pastor", Price: "$4.95"},
				},
			},
		},
	},
	{
		ID:    "sides-desserts",
		Title: "Sides & Desserts",
		Groups: []MenuGroup{
			{
				Title: "Sides",
				Items: []MenuItem{
					{Name: "Chips & Guacamole", Price: "$10.95"},
					{Name: "French Fries", Price: "$5.95"},
					{Name: "Rice or Beans", Price: "$4.95"},
					{Name: "Hot Carrots", Price: "$4.95"},
					{Name: "Mexican Street Corn", Price: "$5.45"},
				},
			},
			{
				Title: "Desserts",
				Items: []MenuItem{
					{Name: "2 PC Churros", Price: "$5.95"},
					{Name: "Dulce De Leche Cake", Price: "$6.95"},
					{Name: "Flan", Price: "$6.95"},
				},
			},
		},
	},
	{
		ID:    "beverages",
		Title: "Beverages",
		Groups: []MenuGroup{
			{
				Title: "Non-Alcoholic",
				Items: []MenuItem{
					{Name: "Agua Frescas", Price: "$5.15"},
					{Name: "Fountain Drink", Price: "$3.95"},
					{Name: "Mexican Bottled Soda", Price: "$3.95"},
					{Name: "Spicy Lemonade or Mango Lemonade", Price: "$5.95"},
					{Name: "Bottled Water", Price: "$2.50"},
				},
			},
			{
				Title: "21+ Beverages",
				Items: []MenuItem{
					{Name: "Sangria", Description: "White or red", Price: "$7.95"},
					{Name: "Micheladas & Cheladas", Description: "Mexican beer, chamoy, tajin, clamato juice", Price: "$8.95"},
					{Name: "Mexican or Craft Beer", Description: "Bottle only - Tecate, Dos Equis, Corona, Pacifico", Price: "$5.50"},
					{Name: "Margaritas", Description: "Choice of strawberry or lime", Price: "$7.95"},
				},
			},
		},
	},
	{
		ID:    "kids",
		Title: "Kid's Menu",
		Groups: []MenuGroup{
			{
				Title: "Kid Favorites",
				Items: []MenuItem{
					{Name: "Kid's Nachos", Description: "Chips, nacho cheese", Price: "$8.45"},
					{Name: "Three Cheese Quesadilla", Price: "$8.45"},
					{Name: "Bean & Cheese Burrito", Price: "$8.45"},
				},
			},
		},
	},
}

var missionValleyMenu = LocationMenu{
	Sections: missionValleySections,
	Nav:      sectionNav(missionValleySections),
	Notes: []string{
		"Mission Valley pricing is maintained directly in this website menu.",
		"Prices and availability can still change by ordering provider.",
	},
	PriceSource:  PriceSourceManual,
	LocalPricing: true,
}

var locationMenus = map[string]LocationMenu{
	"mission-valley": missionValleyMenu,
	"seaport-village": {
		Notes: []string{
			"Seaport Village has location-specific pricing.",
			"Use the attached menu link or delivery providers for the latest prices.",
		},
		PriceSource:    PriceSourceMenuLink,
		LocalPricing:   true,
		PrintedMenuURL: "https://cracktacoshop.com/wp-content/uploads/2024/05/cracktaco-menu-seaport.jpg",
	},
	"encinitas": {
		Notes: []string{
			"Encinitas has location-specific pricing.",
			"Use Toast or the attached menu image for the latest prices.",
		},
		PriceSource:    PriceSourceMenuLink,
		LocalPricing:   true,
		PrintedMenuURL: "https://cracktacoshop.com/wp-content/uploads/2025/10/CrackTaco-Menu-Small-Front-scaled.jpg",
	},
	"coronado": {
		Notes: []string{
			"Coronado has location-specific pricing.",
			"Use Toast or delivery partners for the latest prices.",
		},
		PriceSource:  PriceSourceMenuLink,
		LocalPricing: true,
	},
}

// MenuFor returns the menu for a store slug, falling back to the Mission
// Valley menu for unknown slugs.
func MenuFor(slug string) LocationMenu {
	if m, ok := locationMenus[slug]; ok {
		return m
	}
	return missionValleyMenu
}

// FlattenMenu lists every item across sections and groups in display order.
func FlattenMenu(sections []MenuSection) []MenuItem {
	var items []MenuItem
	for _, s := range sections {
		for _, g := range s.Groups {
			items = append(items, g.Items...)
		}
	}
	return items
}

func sectionNav(sections []MenuSection) []MenuNavEntry {
	nav := make([]MenuNavEntry, 0, len(sections))
	for _, s := range sections {
		nav = append(nav, MenuNavEntry{SectionID: s.ID, Label: s.Title})
	}
	return nav
}
