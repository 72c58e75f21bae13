package property

import "time"

// Seed returns the starter dataset served by a fresh in-memory deployment,
// one listing of each type, in its canonical list order. The store loads it
// verbatim; newly created listings are prepended ahead of it.
func Seed() []*Property {
	return []*Property{
		{
			ID:          "1",
			Name:        "Modern Downtown Apartment",
			Type:        "Apartment",
			Price:       NumericPrice(250000),
			Location:    "Downtown, City Center",
			Description: "Beautiful modern apartment with stunning city views. Features include hardwood floors, stainless steel appliances, and a private balcony.",
			Image:       "https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=500&h=300&fit=crop",
			Bedrooms:    OptionalInt{Value: 2, Set: true},
			Bathrooms:   OptionalNumber{Value: 2, Set: true},
			Area:        OptionalInt{Value: 1200, Set: true},
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Luxury Villa with Pool",
			Type:        "Villa",
			Price:       NumericPrice(850000),
			Location:    "Beverly Hills, CA",
			Description: "Stunning luxury villa featuring a private pool, gourmet kitchen, and panoramic views. Perfect for entertaining with multiple living areas.",
			Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=500&h=300&fit=crop",
			Bedrooms:    OptionalInt{Value: 4, Set: true},
			Bathrooms:   OptionalNumber{Value: 3, Set: true},
			Area:        OptionalInt{Value: 3500, Set: true},
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Cozy Family House",
			Type:        "House",
			Price:       NumericPrice(450000),
			Location:    "Suburban Neighborhood",
			Description: "Perfect family home with a large backyard, updated kitchen, and finished basement. Great schools nearby.",
			Image:       DefaultImage,
			Bedrooms:    OptionalInt{Value: 3, Set: true},
			Bathrooms:   OptionalNumber{Value: 2, Set: true},
			Area:        OptionalInt{Value: 2200, Set: true},
			CreatedAt:   time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Name:        "Contemporary Condo",
			Type:        "Condo",
			Price:       NumericPrice(320000),
			Location:    "Urban District",
			Description: "Sleek contemporary condo with floor-to-ceiling windows, modern amenities, and 24/7 security.",
			Image:       "https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=500&h=300&fit=crop",
			Bedrooms:    OptionalInt{Value: 1, Set: true},
			Bathrooms:   OptionalNumber{Value: 1, Set: true},
			Area:        OptionalInt{Value: 900, Set: true},
			CreatedAt:   time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Name:        "Elegant Townhouse",
			Type:        "Townhouse",
			Price:       NumericPrice(380000),
			Location:    "Historic District",
			Description: "Charming townhouse with original architectural details, updated interiors, and a private garden.",
			Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=500&h=300&fit=crop",
			Bedrooms:    OptionalInt{Value: 3, Set: true},
			Bathrooms:   OptionalNumber{Value: 2, Set: true},
			Area:        OptionalInt{Value: 1800, Set: true},
			CreatedAt:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		},
	}
}
