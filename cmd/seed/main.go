package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Sarujan100/best-wishes-final-sub001/config"
	"github.com/Sarujan100/best-wishes-final-sub001/models"
	"github.com/Sarujan100/best-wishes-final-sub001/services"
	"gorm.io/gorm"
)

// main creates the first admin, the default shipping classes and the starter categories.
// Usage: go run ./cmd/seed -email admin@bestwishes.lk -password 'Secret#2026'
// Flags fall back to SEED_ADMIN_* environment variables. Running it twice changes nothing.
func main() {
	config.Load()

	email := flag.String("email", os.Getenv("SEED_ADMIN_EMAIL"), "admin email")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	firstName := flag.String("first-name", envOr("SEED_ADMIN_FIRST_NAME", "Store"), "admin first name")
	lastName := flag.String("last-name", envOr("SEED_ADMIN_LAST_NAME", "Admin"), "admin last name")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("BEST WISHES ADMIN - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := models.AutoMigrate(config.CmsGorm); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✓ Schema up to date")

	if err := models.SeedShippingClasses(config.CmsGorm); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("✓ Shipping classes seeded")

	created, err := seedCategories(config.CmsGorm)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✓ Starter categories seeded (%d new)", created)

	if *email == "" {
		fmt.Println("⚠️  No -email given, skipping admin account")
		return
	}
	admin, isNew, err := seedAdmin(config.CmsGorm, *email, *password, *firstName, *lastName)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println()
	if isNew {
		fmt.Println("✅ Admin created")
	} else {
		fmt.Println("ℹ️  Admin already exists, left unchanged")
	}
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Role:  %s\n", admin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run .")
	fmt.Println("2. Sign in with POST /api/auth/login")
	fmt.Println("3. Create staff accounts with POST /api/admin/users")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedAdmin(db *gorm.DB, email, password, firstName, lastName string) (*models.User, bool, error) {
	var existing models.User
	err := db.Where("email = ?", models.NormalizeEmail(email)).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("look up admin: %w", err)
	}

	auth := services.GetAuthService()
	if problems := auth.PasswordProblems(password); len(problems) > 0 {
		return nil, false, fmt.Errorf("password rejected: %v", problems)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	admin := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, false, fmt.Errorf("create admin: %w", err)
	}
	return &admin, true, nil
}

var occasions = []string{"Birthday", "Anniversary", "Father's Day", "Mother's Day", "Christmas", "New Year"}

func starterCategories() []models.Category {
	return []models.Category{
		{
			Key: "gifts", Name: "Gifts", Description: "Ready-made and personalised gifts", Icon: "gift",
			IsActive: true, SortOrder: 1,
			Attributes: models.AttributeList{
				{Name: "occasion", DisplayName: "Occasion", Items: occasions},
				{Name: "recipient", DisplayName: "Recipient", Items: []string{"Him", "Her", "Kids", "Couples"}},
			},
		},
		{
			Key: "rentals", Name: "Rentals", Description: "Event items available for hire", Icon: "calendar",
			IsActive: true, SortOrder: 2,
			Attributes: models.AttributeList{
				{Name: "occasion", DisplayName: "Occasion", Items: occasions},
			},
		},
		{
			Key: "decorations", Name: "Decorations", Description: "Balloons, banners and table decor", Icon: "sparkles",
			IsActive: true, SortOrder: 3,
			Attributes: models.AttributeList{
				{Name: "theme", DisplayName: "Theme", Items: []string{"Classic", "Floral", "Kids", "Minimal"}},
				{Name: "color", DisplayName: "Color", Items: []string{"Gold", "Silver", "Pink", "Blue", "White"}},
			},
		},
	}
}

func seedCategories(db *gorm.DB) (int, error) {
	created := 0
	for _, cat := range starterCategories() {
		cat := cat
		res := db.Where("key = ?", cat.Key).FirstOrCreate(&cat)
		if res.Error != nil {
			return created, fmt.Errorf("seed category %s: %w", cat.Key, res.Error)
		}
		created += int(res.RowsAffected)
	}
	return created, nil
}
