package main

import (
	"context"
	"fmt"
	"log"
	"time"

	common_models "go-citizen/internal/common/models"
	"go-citizen/internal/config"
	"go-citizen/internal/features/policy"
	"go-citizen/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the bootstrap accounts and the default service catalogue.
// Safe to run repeatedly; existing records are left alone.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.DBName)

	fmt.Println("Seeding bootstrap data...")

	seedUsers(ctx, db)
	seedServices(ctx, db)

	fmt.Println("Done.")
}

func seedUsers(ctx context.Context, db *mongo.Database) {
	users := []user.User{
		{
			FullName: "System Administrator",
			NIC:      "000000000V",
			Role:     common_models.RoleAdmin,
		},
		{
			FullName:  "K. Wickramasinghe",
			NIC:       "751234567V",
			Role:      common_models.RoleMinistry,
			Province:  "Western",
			ReportsTo: "000000000V",
		},
		{
			FullName:  "S. Jayasundara",
			NIC:       "761234567V",
			Role:      common_models.RoleDistrict,
			Province:  "Western",
			District:  "Colombo",
			ReportsTo: "751234567V",
		},
		{
			FullName:  "P. Gunawardena",
			NIC:       "781234567V",
			Role:      common_models.RoleDS,
			Province:  "Western",
			District:  "Colombo",
			Division:  "Homagama",
			ReportsTo: "761234567V",
		},
		{
			FullName:  "N. Perera",
			NIC:       "801234567V",
			Role:      common_models.RoleGS,
			Province:  "Western",
			District:  "Colombo",
			Division:  "Homagama",
			Section:   "620A",
			ReportsTo: "781234567V",
		},
		{
			FullName: "A. Silva",
			NIC:      "901234567V",
			Role:     common_models.RoleCitizen,
			Province: "Western",
			District: "Colombo",
			Division: "Homagama",
			Section:  "620A",
			Address:  "12, Temple Road, Homagama",
		},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	col := db.Collection("users")
	for _, u := range users {
		count, err := col.CountDocuments(ctx, bson.M{"nic": u.NIC})
		if err != nil {
			log.Printf("Failed to check user %s: %v", u.NIC, err)
			continue
		}
		if count > 0 {
			fmt.Printf("User %s (%s) already exists\n", u.NIC, u.Role)
			continue
		}

		u.HashedPassword = string(hash)
		u.CreatedAt = time.Now()
		if _, err := col.InsertOne(ctx, u); err != nil {
			log.Printf("Failed to create user %s: %v", u.NIC, err)
			continue
		}
		fmt.Printf("Created %s: %s\n", u.Role, u.FullName)
	}
}

func seedServices(ctx context.Context, db *mongo.Database) {
	col := db.Collection("services")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Failed to check services: %v", err)
		return
	}
	if count > 0 {
		fmt.Println("Service catalogue already seeded")
		return
	}

	policies := policy.DefaultPolicies()
	docs := make([]interface{}, 0, len(policies))
	for _, pol := range policies {
		docs = append(docs, pol)
	}
	if _, err := col.InsertMany(ctx, docs); err != nil {
		log.Printf("Failed to seed services: %v", err)
		return
	}
	fmt.Printf("Seeded %d services\n", len(policies))
}
