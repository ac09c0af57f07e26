package main

import (
	"flag"
	"fmt"
	"log"

	"condo-portal/internal/config"
	"condo-portal/internal/model"
	"condo-portal/internal/repository/postgres"

	"golang.org/x/crypto/bcrypt"
)

// Registration always produces pending residents, so the first admin of a
// community is bootstrapped out of band with this command. It also creates
// the community row when the address reference is new.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "Administrator", "display name")
	addressRef := flag.String("address-ref", "", "community address reference")
	communityName := flag.String("community-name", "", "community name (used when creating)")
	flag.Parse()

	if *email == "" || *password == "" || *addressRef == "" {
		log.Fatal("email, password and address-ref are required")
	}

	cfg := config.Load()
	if err := postgres.InitDB(cfg.DSN()); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := postgres.DB.AutoMigrate(&model.Community{}, &model.User{}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	communities := &postgres.CommunityRepository{DB: postgres.DB}
	cname := *communityName
	if cname == "" {
		cname = *addressRef
	}
	community, err := communities.FindOrCreateByAddressRef(&model.Community{
		Name:       cname,
		AddressRef: *addressRef,
	})
	if err != nil {
		log.Fatalf("community lookup failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password failed: %v", err)
	}

	users := &postgres.UserRepository{DB: postgres.DB}
	admin := &model.User{
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         model.RoleAdmin,
		Status:       model.StatusApproved,
		CommunityID:  &community.ID,
	}
	if err := users.Create(admin); err != nil {
		log.Fatalf("create admin failed: %v", err)
	}

	fmt.Printf("admin %s (id=%d) created for community %s (id=%d)\n",
		admin.Email, admin.ID, community.Name, community.ID)
}
