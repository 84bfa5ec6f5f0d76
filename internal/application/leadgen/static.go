package leadgen

// Static catalog backing the synthetic business generator. Used when no
// search provider credential is configured so the pipeline stays
// exercisable end to end in development.

var businessNamesByIndustry = map[string][]string{
	"restaurant": {
		"Spice Garden", "Royal Biryani House", "Cafe Aroma", "The Curry Leaf",
		"Tandoor Express", "Coastal Kitchen", "Urban Dhaba", "Masala Junction",
	},
	"retail": {
		"City Mart", "Fashion Point", "Trendy Bazaar", "Galaxy Stores",
		"Smart Shoppe", "Metro Retail", "Prime Collections", "Star Emporium",
	},
	"manufacturing": {
		"Precision Industries", "Apex Engineering Works", "Shree Fabricators",
		"National Polymers", "Sunrise Packaging", "Omega Tools", "Vertex Metals",
	},
	"healthcare": {
		"LifeCare Clinic", "Wellness Pharmacy", "City Diagnostics",
		"CarePoint Hospital", "MediPlus Labs", "Arogya Health Centre",
	},
	"education": {
		"Bright Minds Academy", "Scholars Institute", "Knowledge Tree",
		"Excel Coaching Centre", "Little Steps Preschool", "Vidya Mandir",
	},
}

var defaultBusinessNames = []string{
	"Sunrise Enterprises", "Galaxy Traders", "Prime Solutions",
	"Evergreen Ventures", "Pinnacle Services", "Horizon Group",
}

var businessPrefixes = []string{"New", "Shri", "Royal", "Modern", "Classic", "Golden"}

type cityInfo struct {
	State string
	Areas []string
}

var citiesByName = map[string]cityInfo{
	"Mumbai":     {State: "Maharashtra", Areas: []string{"Andheri", "Bandra", "Dadar", "Powai", "Borivali"}},
	"Delhi":      {State: "Delhi", Areas: []string{"Karol Bagh", "Lajpat Nagar", "Saket", "Dwarka", "Rohini"}},
	"Bangalore":  {State: "Karnataka", Areas: []string{"Koramangala", "Indiranagar", "Whitefield", "Jayanagar"}},
	"Hyderabad":  {State: "Telangana", Areas: []string{"Banjara Hills", "Gachibowli", "Secunderabad", "Kukatpally"}},
	"Chennai":    {State: "Tamil Nadu", Areas: []string{"T Nagar", "Anna Nagar", "Velachery", "Adyar"}},
	"Pune":       {State: "Maharashtra", Areas: []string{"Kothrud", "Hinjewadi", "Viman Nagar", "Baner"}},
	"Ahmedabad":  {State: "Gujarat", Areas: []string{"Navrangpura", "Maninagar", "Satellite", "Bopal"}},
	"Surat":      {State: "Gujarat", Areas: []string{"Adajan", "Vesu", "Katargam", "Varachha"}},
	"Coimbatore": {State: "Tamil Nadu", Areas: []string{"RS Puram", "Gandhipuram", "Peelamedu"}},
	"Rajkot":     {State: "Gujarat", Areas: []string{"Kalawad Road", "University Road", "Mavdi"}},
}

func namesForIndustry(industry string) []string {
	if names, ok := businessNamesByIndustry[industry]; ok {
		return names
	}
	return defaultBusinessNames
}
