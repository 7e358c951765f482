package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"seatwise/internal/layouts"
	"seatwise/internal/shared/config"
	"seatwise/internal/shared/database"
	"seatwise/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Seatwise Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"layouts",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed users first (no dependencies)
	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed demo layouts
	if err := s.SeedLayouts(); err != nil {
		return fmt.Errorf("failed to seed layouts: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@seatwise.io", users.RoleAdmin},
		{"user1", "Asha", "Rao", "asha.rao@seatwise.io", users.RoleUser},
		{"user2", "Dev", "Mehta", "dev.mehta@seatwise.io", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedLayouts creates one seating chart per demo venue plus a GA layout,
// driving the same operations the designer uses so the seeded documents look
// exactly like saved editor output.
func (s *Seeder) SeedLayouts() error {
	fmt.Println("  🏟️ Seeding layouts...")

	theaterVenue := uuid.New()
	arenaVenue := uuid.New()
	hallVenue := uuid.New()

	// Demo 1: small theater, two straight sections
	theater := layouts.NewSeatingChart(theaterVenue, "Grand Theater - Main Hall")
	theater = theater.AddSection("Orchestra")
	theater = theater.AddSection("Mezzanine")
	orchestraID := theater.Sections[0].ID
	mezzanineID := theater.Sections[1].ID
	theater = theater.ChangePricing(orchestraID, layouts.PricingPremium)
	theater = theater.ChangeColor(orchestraID, layouts.PricingPremium.DefaultColor())
	theater = theater.ChangePricing(mezzanineID, layouts.PricingEconomy)
	theater = theater.ChangeColor(mezzanineID, layouts.PricingEconomy.DefaultColor())

	if err := s.createLayout(theater); err != nil {
		return err
	}

	// Demo 2: arena bowl, curved sections facing the stage from three sides
	arena := layouts.NewSeatingChart(arenaVenue, "City Arena - Concert Bowl")
	arena = arena.AddSection("Floor VIP")
	arena = arena.AddSection("Lower Bowl East")
	arena = arena.AddSection("Lower Bowl West")
	floorID := arena.Sections[0].ID
	eastID := arena.Sections[1].ID
	westID := arena.Sections[2].ID

	arena = arena.ChangePricing(floorID, layouts.PricingVIP)
	arena = arena.ChangeColor(floorID, layouts.PricingVIP.DefaultColor())
	arena = arena.ToggleCurved(eastID)
	arena = arena.ToggleCurved(westID)
	arena = arena.MoveSection(eastID, 850, 300)
	arena = arena.RotateSection(eastID, -30)
	arena = arena.MoveSection(westID, 150, 300)
	arena = arena.RotateSection(westID, 30)
	arena = arena.MoveStage(400, 60)

	if err := s.createLayout(arena); err != nil {
		return err
	}

	// Demo 3: general admission hall with two capacity levels
	ga := &layouts.Layout{
		ID:      uuid.New(),
		VenueID: hallVenue,
		Name:    "Festival Hall - Standing",
		Type:    layouts.LayoutTypeGeneralAdmission,
		ViewBox: layouts.ViewBox{Width: 1200, Height: 800},
		GALevels: []layouts.GALevel{
			{ID: "level-1", Name: "Floor", Capacity: 1500, Type: "standing"},
			{ID: "level-2", Name: "Balcony", Capacity: 400, Type: "mixed"},
		},
		Capacity:  1900,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	return s.createLayout(ga)
}

func (s *Seeder) createLayout(l *layouts.Layout) error {
	if err := s.db.PostgreSQL.Create(l).Error; err != nil {
		return fmt.Errorf("failed to create layout %s: %w", l.Name, err)
	}
	fmt.Printf("    ✅ Created layout: %s (%s, capacity %d)\n", l.Name, l.Type, l.Capacity)
	return nil
}
