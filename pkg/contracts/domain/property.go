package domain

// Property is one apartment/unit listing evaluated by the buyer calculator.
// Monetary fields are NZD; cost fields are annual amounts.
type Property struct {
	Address            string  `yaml:"address" json:"address" validate:"required"`
	WeeklyRent         float64 `yaml:"weekly_rent" json:"weekly_rent" validate:"gte=0"`
	BodyCorp           float64 `yaml:"body_corp" json:"body_corp" validate:"gte=0"`
	Rates              float64 `yaml:"rates" json:"rates" validate:"gte=0"`
	Insurance          float64 `yaml:"insurance" json:"insurance" validate:"gte=0"`
	PropertyManagement float64 `yaml:"property_management" json:"property_management" validate:"gte=0"`
	MaintenanceReserve float64 `yaml:"maintenance_reserve" json:"maintenance_reserve" validate:"gte=0"`
	BuildYear          int     `yaml:"build_year" json:"build_year" validate:"omitempty,gte=1800,lte=2100"`
	RV                 float64 `yaml:"rv" json:"rv" validate:"gte=0"`
	AskingLayout       string  `yaml:"asking_layout" json:"asking_layout"`
	RentalStatus       string  `yaml:"rental_status" json:"rental_status"`
	Link               string  `yaml:"link" json:"link" validate:"omitempty,url"`
	Notes              string  `yaml:"notes" json:"notes"`
}

// FixedCosts returns body corp, rates and insurance in sheet order
func (p Property) FixedCosts() []float64 {
	return []float64{p.BodyCorp, p.Rates, p.Insurance}
}

// EditableCosts returns the costs the buyer is expected to adjust
func (p Property) EditableCosts() []float64 {
	return []float64{p.PropertyManagement, p.MaintenanceReserve}
}
