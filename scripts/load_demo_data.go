package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pev-registry-backend/internal/config"
	"pev-registry-backend/internal/database"
	"pev-registry-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

type PevData struct {
	OwnerEmail      string   `yaml:"owner_email"`
	Make            string   `yaml:"make"`
	Model           string   `yaml:"model"`
	Year            int      `yaml:"year"`
	VIN             string   `yaml:"vin"`
	LicensePlate    string   `yaml:"license_plate"`
	Color           *string  `yaml:"color,omitempty"`
	BatteryCapacity *float64 `yaml:"battery_capacity,omitempty"`
	RangeMiles      *int     `yaml:"range_miles,omitempty"`
	Status          string   `yaml:"status,omitempty"`
}

type TransferData struct {
	VIN           string  `yaml:"vin"`
	FromUserEmail string  `yaml:"from_user_email"`
	ToUserEmail   *string `yaml:"to_user_email,omitempty"`
	ToEmail       *string `yaml:"to_email,omitempty"`
	ToName        *string `yaml:"to_name,omitempty"`
	ToPhone       *string `yaml:"to_phone,omitempty"`
	Notes         string  `yaml:"notes,omitempty"`
	Status        string  `yaml:"status,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type PevsFile struct {
	Pevs []PevData `yaml:"pevs"`
}

type TransfersFile struct {
	Transfers []TransferData `yaml:"transfers"`
}

func main() {
	log.Println("Loading demo data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logs, including the expected "record not found" probes
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	pevs, err := loadPevs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load pevs: %w", err)
	}

	transfers, err := loadTransfers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load transfers: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create vehicles
	pevMap := make(map[string]*models.Vehicle)
	pevCreated := 0
	for _, pevData := range pevs {
		pev, created, err := createPev(db, pevData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create pev %s: %w", pevData.VIN, err)
		}
		pevMap[pevData.VIN] = pev
		if created {
			pevCreated++
		}
	}
	log.Printf("PEVs: %d created, %d total", pevCreated, len(pevs))

	// Create transfers
	transferCreated := 0
	for _, transferData := range transfers {
		_, created, err := createTransfer(db, transferData, userMap, pevMap)
		if err != nil {
			log.Printf("Warning: failed to create transfer for %s: %v", transferData.VIN, err)
			continue
		}
		if created {
			transferCreated++
		}
	}
	log.Printf("Transfers: %d created, %d total", transferCreated, len(transfers))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadPevs(dataDir string) ([]PevData, error) {
	var allPevs []PevData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "pevs") {
			var file PevsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPevs = append(allPevs, file.Pevs...)
		}
		return nil
	})

	return allPevs, err
}

func loadTransfers(dataDir string) ([]TransferData, error) {
	var allTransfers []TransferData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "transfers") {
			var file TransfersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTransfers = append(allTransfers, file.Transfers...)
		}
		return nil
	})

	return allTransfers, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Name:  userData.Name,
				Email: userData.Email,
				Phone: userData.Phone,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createPev(db *gorm.DB, pevData PevData, userMap map[string]*models.User) (*models.Vehicle, bool, error) {
	owner := userMap[pevData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for pev %s", pevData.OwnerEmail, pevData.VIN)
	}

	status := models.VehicleStatus(pevData.Status)
	if pevData.Status == "" {
		status = models.VehicleStatusActive
	}

	var pev models.Vehicle
	if err := db.Where("vin = ?", pevData.VIN).First(&pev).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			pev = models.Vehicle{
				OwnerID:            owner.ID,
				Make:               pevData.Make,
				Model:              pevData.Model,
				Year:               pevData.Year,
				VIN:                pevData.VIN,
				LicensePlate:       pevData.LicensePlate,
				Color:              pevData.Color,
				BatteryCapacityKWh: pevData.BatteryCapacity,
				RangeMiles:         pevData.RangeMiles,
				Status:             status,
			}

			if err := db.Create(&pev).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create pev: %w", err)
			}
			return &pev, true, nil
		}
		return nil, false, fmt.Errorf("failed to query pev: %w", err)
	}

	return &pev, false, nil
}

func createTransfer(db *gorm.DB, transferData TransferData, userMap map[string]*models.User, pevMap map[string]*models.Vehicle) (*models.PevTransfer, bool, error) {
	pev := pevMap[transferData.VIN]
	if pev == nil {
		return nil, false, fmt.Errorf("pev %s not found", transferData.VIN)
	}

	fromUser := userMap[transferData.FromUserEmail]
	if fromUser == nil {
		return nil, false, fmt.Errorf("initiating user %s not found", transferData.FromUserEmail)
	}

	status := models.TransferStatus(transferData.Status)
	if transferData.Status == "" {
		status = models.TransferStatusPending
	}

	var existing models.PevTransfer
	if err := db.Where("pev_id = ? AND from_user_id = ? AND status = ?", pev.ID, fromUser.ID, status).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			transfer := models.PevTransfer{
				VehicleID:   pev.ID,
				FromUserID:  fromUser.ID,
				ToEmail:     transferData.ToEmail,
				ToName:      transferData.ToName,
				ToPhone:     transferData.ToPhone,
				Notes:       transferData.Notes,
				Status:      status,
				InitiatedAt: time.Now(),
			}

			if transferData.ToUserEmail != nil {
				toUser := userMap[*transferData.ToUserEmail]
				if toUser == nil {
					return nil, false, fmt.Errorf("recipient user %s not found", *transferData.ToUserEmail)
				}
				transfer.ToUserID = &toUser.ID
			}

			if status.Terminal() {
				now := time.Now()
				transfer.CompletedAt = &now
			}

			if err := db.Create(&transfer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create transfer: %w", err)
			}
			return &transfer, true, nil
		}
		return nil, false, fmt.Errorf("failed to query transfer: %w", err)
	}

	return &existing, false, nil
}
