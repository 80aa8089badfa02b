package models

// Employees is the fixed technician roster orders are assigned from.
var Employees = []string{
	"SEAN",
	"THABO",
	"BABONGILE",
	"BANGANE",
	"NDUMISO",
}

// SneakerBrands is the shop-curated brand suggestion list for the intake form.
// Brand remains free text; this is only the suggested set.
var SneakerBrands = []string{
	"Nike", "Jordan", "Adidas", "New Balance", "Asics", "Puma", "Reebok", "Yeezy", "Converse", "Vans", "Luxury/Designer",
}
