package store

import (
	"fmt"
	"math/rand"
	"time"

	domain "github.com/studio316/booking-api/internal/domain/appointment"
	"github.com/studio316/booking-api/internal/models"
)

// SeedCatalog loads the fixed reference data: the shop's barbers and
// services, plus the demo identities. Barbers and services never change at
// runtime apart from barber status.
func (s *Store) SeedCatalog(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []models.User{
		{
			ID:        "user1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Phone:     "555-123-4567",
			CreatedAt: now,
		},
		{
			ID:                "user2",
			Name:              "Jane Smith",
			Email:             "jane@example.com",
			Phone:             "555-987-6543",
			PreferredBarberID: "barber1",
			CreatedAt:         now,
		},
		{
			ID:        "admin1",
			Name:      "Admin User",
			Email:     "admin@studio316.com",
			Phone:     "555-111-2222",
			IsAdmin:   true,
			CreatedAt: now,
		},
	}

	s.barbers = []models.Barber{
		{
			ID:          "barber1",
			Name:        "Mike Johnson",
			Avatar:      "https://images.unsplash.com/photo-1618077360395-f3068be8e001?w=300",
			Specialties: []string{"Classic Cuts", "Fades", "Beard Trims"},
			Bio:         "With 10 years of experience, Mike specializes in classic cuts and modern fades.",
			Status:      "available",
			Position:    models.Position{X: 20, Y: 30},
		},
		{
			ID:          "barber2",
			Name:        "Sarah Williams",
			Avatar:      "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=300",
			Specialties: []string{"Modern Styles", "Hair Coloring", "Skin Fades"},
			Bio:         "Sarah brings creativity and precision to every haircut with 8 years in the industry.",
			Status:      "occupied",
			Position:    models.Position{X: 60, Y: 30},
		},
		{
			ID:          "barber3",
			Name:        "David Martinez",
			Avatar:      "https://images.unsplash.com/photo-1531384441138-2736e62e0919?w=300",
			Specialties: []string{"Razor Cuts", "Hot Towel Shaves", "Beard Styling"},
			Bio:         "David is our beard and shaving expert with over 12 years of experience.",
			Status:      "break",
			Position:    models.Position{X: 20, Y: 70},
		},
		{
			ID:          "barber4",
			Name:        "Lisa Chen",
			Avatar:      "https://images.unsplash.com/photo-1567532939604-b6b5b0db2604?w=300",
			Specialties: []string{"Textured Cuts", "Pompadours", "Kids Cuts"},
			Bio:         "Lisa specializes in creating the perfect cut for any hair type and age.",
			Status:      "available",
			Position:    models.Position{X: 60, Y: 70},
		},
	}

	s.services = []models.Service{
		{ID: "service1", Name: "Classic Haircut", Description: "Traditional haircut with scissors and clippers", DurationMin: 30, Price: 25},
		{ID: "service2", Name: "Fade", Description: "Modern fade haircut with precise blending", DurationMin: 45, Price: 35},
		{ID: "service3", Name: "Beard Trim", Description: "Shape and trim your beard to perfection", DurationMin: 20, Price: 15},
		{ID: "service4", Name: "Haircut & Beard Combo", Description: "Complete haircut and beard trim service", DurationMin: 60, Price: 45},
		{ID: "service5", Name: "Hot Towel Shave", Description: "Luxurious hot towel straight razor shave", DurationMin: 45, Price: 30},
		{ID: "service6", Name: "Kids Haircut", Description: "Haircut for children under 12", DurationMin: 20, Price: 18},
	}
}

// SeedAppointments fills the ledger with sample bookings spread over the
// next week, drawn from the given generator so a fixed seed reproduces the
// same ledger.
func (s *Store) SeedAppointments(rng *rand.Rand, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < 20; i++ {
		day := now.AddDate(0, 0, rng.Intn(7))
		hour := 9 + rng.Intn(9)
		minute := 0
		if rng.Intn(2) == 1 {
			minute = 30
		}

		status := domain.StatusConfirmed
		if rng.Intn(5) == 0 {
			status = domain.StatusPending
		}

		ap := models.Appointment{
			ID:        fmt.Sprintf("appointment%d", i+1),
			UserID:    fmt.Sprintf("user%d", 1+rng.Intn(2)),
			BarberID:  fmt.Sprintf("barber%d", 1+rng.Intn(4)),
			ServiceID: fmt.Sprintf("service%d", 1+rng.Intn(6)),
			Date:      day.Format("2006-01-02"),
			Time:      fmt.Sprintf("%02d:%02d", hour, minute),
			Status:    string(status),
			CreatedAt: now,
		}

		// The seeded ledger honors the same slot uniqueness the booking
		// path enforces.
		taken := false
		for j := range s.appointments {
			a := &s.appointments[j]
			if a.BarberID == ap.BarberID && a.Date == ap.Date && a.Time == ap.Time {
				taken = true
				break
			}
		}
		if !taken {
			s.appointments = append(s.appointments, ap)
		}
	}
}
