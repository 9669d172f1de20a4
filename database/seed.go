package database

import (
	"gashadrift/models"
)

// SeedFleet returns the starter fleet the storefront boots with. All state
// is in-memory and discarded on restart.
func SeedFleet() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:           "1",
			Make:         "Tesla",
			Model:        "Model 3",
			Year:         2023,
			Type:         models.TypeElectric,
			PricePerDay:  120,
			Image:        "https://images.unsplash.com/photo-1560958089-b8a1929cea89?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusAvailable,
			Location:     "Bole International Airport",
			Transmission: "Automatic",
			Seats:        5,
			FuelType:     "Electric",
			LicensePlate: "AA-2-12345",
		},
		{
			ID:           "2",
			Make:         "Toyota",
			Model:        "Land Cruiser Prado",
			Year:         2022,
			Type:         models.TypeSUV,
			PricePerDay:  150,
			Image:        "https://images.unsplash.com/photo-1594502184342-2e12f877aa73?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusAvailable,
			Location:     "Addis Ababa Downtown",
			Transmission: "Automatic",
			Seats:        7,
			FuelType:     "Diesel",
			LicensePlate: "AA-2-56789",
		},
		{
			ID:           "3",
			Make:         "BMW",
			Model:        "5 Series",
			Year:         2023,
			Type:         models.TypeLuxury,
			PricePerDay:  200,
			Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusAvailable,
			Location:     "Addis Ababa Downtown",
			Transmission: "Automatic",
			Seats:        5,
			FuelType:     "Petrol",
			LicensePlate: "AA-2-00001",
		},
		{
			ID:           "4",
			Make:         "Ford",
			Model:        "Ranger Raptor",
			Year:         2021,
			Type:         models.TypeTruck,
			PricePerDay:  140,
			Image:        "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusReserved,
			Location:     "Lancha Branch",
			Transmission: "Automatic",
			Seats:        5,
			FuelType:     "Diesel",
			LicensePlate: "AA-2-99887",
		},
		{
			ID:           "5",
			Make:         "Hyundai",
			Model:        "Elantra",
			Year:         2022,
			Type:         models.TypeSedan,
			PricePerDay:  80,
			Image:        "https://images.unsplash.com/photo-1590362891991-f776e747a588?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusAvailable,
			Location:     "Gerji Office",
			Transmission: "Automatic",
			Seats:        5,
			FuelType:     "Petrol",
			LicensePlate: "AA-2-44332",
		},
		{
			ID:           "6",
			Make:         "Range Rover",
			Model:        "Sport",
			Year:         2024,
			Type:         models.TypeLuxury,
			PricePerDay:  350,
			Image:        "https://images.unsplash.com/photo-1606611013016-969c19ba27bb?auto=format&fit=crop&q=80&w=800",
			Status:       models.StatusAvailable,
			Location:     "Bole International Airport",
			Transmission: "Automatic",
			Seats:        5,
			FuelType:     "Hybrid",
			LicensePlate: "AA-2-VIP01",
		},
	}
}
