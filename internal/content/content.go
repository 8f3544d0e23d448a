// Package content holds the site's fixed marketing copy: identity, FAQ,
// review excerpts, and per-location menus. Declarative data only; pages and
// JSON endpoints render it as-is.
package content

// Site is the brand identity shared by every page.
var Site = struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	URL       string `json:"url"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Tagline   string `json:"tagline"`
	Headline  string `json:"headline"`
	Story     string `json:"story"`
}{
	Name:      "Crack Taco Shop San Diego",
	ShortName: "Crack Taco Shop",
	URL:       "https://cracktacoshop.com",
	Phone:     "619-269-2828",
	Instagram: "https://www.instagram.com/cracktacoshopsd",
	Facebook:  "https://www.facebook.com/cracktacoshop/",
	Tagline:   "Using the world famous Burgundy Pepper Tri-Tip since 1985",
	Headline:  "Home of the Best Tri-Tip Tacos and Burritos",
	Story:     "We use the famous Cardiff Crack Tri-Tip steak in our tacos and burritos. Come and see us for breakfast, lunch or dinner. We offer homemade corn tortillas, beer, wine, sangria and specialty Micheladas.",
}

// Highlight is one "why us" card on the home page.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Highlights = []Highlight{
	{Title: "Unrivaled Quality", Description: "We only use top-quality ingredients."},
	{Title: "Flat Out Fresh", Description: "Daily handmade tortillas, guacamole and salsa."},
	{Title: "Open Late 7 Days", Description: "Delicious eats, morning, noon and night."},
}

// FAQItem is one question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var FAQ = []FAQItem{
	{
		Question: "Are you a San Diego based taco shop?",
		Answer:   "Yes. Crack Taco Shop is San Diego based and currently serves guests in Mission Valley, Seaport Village, Encinitas, and Coronado.",
	},
	{
		Question: "What makes Crack Taco Shop different?",
		Answer:   "We are known for tacos and burritos built with the world famous Burgundy Pepper Tri-Tip, plus fast ordering and made-fresh flavors across all locations.",
	},
	{
		Question: "How do I order online?",
		Answer:   "Choose your location first, then use Order Online to open that store's menu page. This makes sure your order goes to the right kitchen.",
	},
	{
		Question: "Do all locations have the same menu?",
		Answer:   "Not always. Core favorites are available across stores, but specific items and platform availability can vary by location.",
	},
	{
		Question: "What delivery apps do you support?",
		Answer:   "Delivery options include DoorDash, GrubHub, and Uber Eats where available. Some stores also support Toast pickup ordering.",
	},
	{
		Question: "What are your hours?",
		Answer:   "Hours vary by location, and some stores stay open late. Check the Locations page for current store hours before you visit or order.",
	},
	{
		Question: "Do you have vegetarian-friendly options?",
		Answer:   "Yes. We offer vegetarian-friendly choices, including meatless menu options and sides. Availability can vary by store.",
	},
	{
		Question: "How do I get directions or contact a specific store?",
		Answer:   "Open the Locations page and select your store to view map directions, address details, and direct phone links.",
	},
}

// Review is one customer review excerpt shown on the reviews page.
type Review struct {
	Quote           string `json:"quote"`
	Author          string `json:"author"`
	ReviewerStats   string `json:"reviewerStats"`
	LocationVisited string `json:"locationVisited"`
	TimeAgo         string `json:"timeAgo"`
	Rating          int    `json:"rating"`
}

var Reviews = []Review{
	{
		Quote:           "I liked my experience here, and felt the food was very good and enjoyable. Spacious interior for solo diners and lunch break groups. Staff was welcoming, attentive, and warm.",
		Author:          "M Wong",
		ReviewerStats:   "Local Guide · 358 reviews · 929 photos",
		LocationVisited: "Encinitas",
		TimeAgo:         "2 months ago",
		Rating:          5,
	},
	{
		Quote:           "This is the easiest 5-star rating I’ve given in a while. Service was excellent and the food came out fast and hot.",
		Author:          "Justin Campbell",
		ReviewerStats:   "2 reviews · 1 photo",
		LocationVisited: "Mission Valley",
		TimeAgo:         "2 months ago",
		Rating:          5,
	},
	{
		Quote:           "Hungry? Go straight to Crack Taco Shop, the team will take great care of you. Best food to get at any time of day.",
		Author:          "Sean Meer",
		ReviewerStats:   "Local Guide · 14 reviews · 5 photos",
		LocationVisited: "Coronado",
		TimeAgo:         "2 months ago",
		Rating:          5,
	},
	{
		Quote:           "Super fast service and the burritos are packed. The crack tri-tip taco is still my number one every time.",
		Author:          "Ariana M.",
		ReviewerStats:   "Local Guide · 27 reviews · 18 photos",
		LocationVisited: "Mission Valley",
		TimeAgo:         "3 months ago",
		Rating:          5,
	},
	{
		Quote:           "Late night food that actually tastes fresh. Great portions, clean shop, and staff was awesome.",
		Author:          "Chris L.",
		ReviewerStats:   "13 reviews",
		LocationVisited: "Seaport Village",
		TimeAgo:         "1 month ago",
		Rating:          5,
	},
	{
		Quote:           "Love that each location has delivery options and easy pickup. Food quality has stayed consistent.",
		Author:          "Natalie R.",
		ReviewerStats:   "21 reviews · 4 photos",
		LocationVisited: "Encinitas",
		TimeAgo:         "4 months ago",
		Rating:          5,
	},
	{
		Quote:           "The queso birria and breakfast burrito were both excellent. Easily one of our go-to spots now.",
		Author:          "Derek S.",
		ReviewerStats:   "8 reviews",
		LocationVisited: "Coronado",
		TimeAgo:         "5 months ago",
		Rating:          5,
	},
	{
		Quote:           "Ordered for a group and everything was labeled and hot. Perfect place for team lunch pickups.",
		Author:          "Leah P.",
		ReviewerStats:   "Office Lunch Organizer · 11 reviews",
		LocationVisited: "Mission Valley",
		TimeAgo:         "2 months ago",
		Rating:          5,
	},
	{
		Quote:           "Best value for quality in the area. The al pastor and tri-tip both had excellent flavor and texture.",
		Author:          "Jason T.",
		ReviewerStats:   "Weekend Regular · 16 reviews",
		LocationVisited: "Seaport Village",
		TimeAgo:         "3 months ago",
		Rating:          5,
	},
}

// Special is one featured offer on the specials page.
type Special struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

var Specials = []Special{
	{
		Title:   "Crack (Tri-Tip) Taco",
		Details: "Our signature taco with Burgundy Pepper Tri-Tip, onion, guacamole, and cilantro on a handmade corn tortilla.",
	},
	{
		Title:   "Queso Birria",
		Details: "Slow-braised birria with melted cheese, served with guacamole and sour cream.",
	},
	{
		Title:   "Micheladas & Cheladas",
		Details: "Mexican beer with chamoy, tajin, and clamato juice. 21+ only, available in store.",
	},
}

// MarketingHighlight is one promo card with a call to action.
type MarketingHighlight struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	CTALabel string `json:"ctaLabel"`
	Href     string `json:"href"`
}

var MarketingHighlights = []MarketingHighlight{
	{
		Title:    "New Location Spotlight",
		Message:  "Visit our Encinitas location for all-day tri-tip tacos and burritos.",
		CTALabel: "Order Encinitas",
		Href:     "/locations/encinitas",
	},
	{
		Title:    "Seaport Late-Night Eats",
		Message:  "Open every day until 2AM. Perfect for post-game and late-night food runs.",
		CTALabel: "Order Seaport",
		Href:     "/locations/seaport-village",
	},
	{
		Title:    "Pickup + Delivery Ready",
		Message:  "Order online with Toast pickup where available, plus DoorDash, GrubHub, and Uber Eats.",
		CTALabel: "Start Ordering",
		Href:     "/order-online",
	},
}
