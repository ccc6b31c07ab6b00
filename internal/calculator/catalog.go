package calculator

import "investreports/pkg/contracts/domain"

// DefaultProperties returns the built-in listings used when no property file
// is configured. Property management and maintenance reserve are the buyer's
// own estimates.
func DefaultProperties() []domain.Property {
	return []domain.Property{
		{
			Address:            "Unit 12/45 Queen Street, Auckland CBD",
			WeeklyRent:         650,
			BodyCorp:           4500,
			Rates:              2800,
			Insurance:          1200,
			PropertyManagement: 1800,
			MaintenanceReserve: 900,
			BuildYear:          2015,
			RV:                 520000,
			AskingLayout:       "$475000 / 1 bed 1 bath + study",
			RentalStatus:       "Long-term lease until March 2026",
			Link:               "https://example.com/property1",
			Notes:              "Prime CBD location, close to the Sky Tower",
		},
		{
			Address:            "Apt 8/123 Lambton Quay, Wellington",
			WeeklyRent:         550,
			BodyCorp:           3800,
			Rates:              2200,
			Insurance:          1100,
			PropertyManagement: 1600,
			MaintenanceReserve: 800,
			BuildYear:          2012,
			RV:                 420000,
			AskingLayout:       "$395000 / 2 bed 1 bath",
			RentalStatus:       "Monthly tenancy, stable tenant",
			Link:               "https://example.com/property2",
			Notes:              "Government precinct, good public transport",
		},
		{
			Address:            "Unit 15/78 Cashel Street, Christchurch",
			WeeklyRent:         420,
			BodyCorp:           2800,
			Rates:              1800,
			Insurance:          950,
			PropertyManagement: 1200,
			MaintenanceReserve: 600,
			BuildYear:          2018,
			RV:                 340000,
			AskingLayout:       "$310000 / 1 bed 1 bath",
			RentalStatus:       "Vacant, ready to let",
			Link:               "https://example.com/property3",
			Notes:              "New build in the rebuild zone, modern facilities",
		},
		{
			Address:            "Apt 6/234 Tay Street, Hamilton",
			WeeklyRent:         380,
			BodyCorp:           2400,
			Rates:              1600,
			Insurance:          850,
			PropertyManagement: 1100,
			MaintenanceReserve: 550,
			BuildYear:          2010,
			RV:                 300000,
			AskingLayout:       "$275000 / 2 bed 1 bath",
			RentalStatus:       "Tenanted, 6 month lease",
			Link:               "https://example.com/property4",
			Notes:              "Near the university, steady student demand",
		},
		{
			Address:            "Unit 22/156 Riccarton Road, Christchurch",
			WeeklyRent:         440,
			BodyCorp:           3200,
			Rates:              1900,
			Insurance:          1000,
			PropertyManagement: 1300,
			MaintenanceReserve: 650,
			BuildYear:          2016,
			RV:                 360000,
			AskingLayout:       "$335000 / 1 bed 1 bath + parking",
			RentalStatus:       "Long-term lease until December 2025",
			Link:               "https://example.com/property5",
			Notes:              "Close to the mall and university, includes a car park",
		},
	}
}
