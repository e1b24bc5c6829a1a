package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/yohannesDev93/ecommerce-project-sub001/internal/catalog"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/session"
	"github.com/yohannesDev93/ecommerce-project-sub001/internal/store"
)

func main() {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Admin tooling for the storefront database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(addUserCmd(), seedCatalogCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStore() (*store.Store, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./storefront.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Ensure tables exist if running the CLI before the server
	if err := db.InitSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return db, nil
}

func addUserCmd() *cobra.Command {
	var username, password, email, fullName, role string

	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "Create a user account (defaults to ADMIN role)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}
			if role != session.RoleAdmin && role != session.RoleCustomer {
				return fmt.Errorf("role must be %s or %s", session.RoleAdmin, session.RoleCustomer)
			}

			db, err := openStore()
			if err != nil {
				return err
			}

			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			if err := db.CreateUser(username, string(hashed), email, fullName, role); err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("User '%s' (%s) created successfully.\n", username, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username for the new user")
	cmd.Flags().StringVar(&password, "password", "", "Password for the new user")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", session.RoleAdmin, "Role (ADMIN or CUSTOMER)")
	return cmd
}

func seedCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-catalog",
		Short: "Insert a few sample categories and items for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}

			catID, err := db.CreateCategory("Handmade")
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			samples := []struct {
				name     string
				base     float64
				discount float64
				stock    int
			}{
				{"Woven Basket", 34.50, 0, 12},
				{"Leather Bag", 120.00, 15, 4},
				{"Wool Scarf", 19.99, 0, 25},
			}

			for _, sample := range samples {
				item, err := catalog.New(0, sample.name, sample.base, sample.discount)
				if err != nil {
					return fmt.Errorf("invalid sample item %q: %w", sample.name, err)
				}
				item.Stock = sample.stock
				item.Category.ID = catID
				if err := db.CreateItem(item); err != nil {
					return fmt.Errorf("failed to insert %q: %w", sample.name, err)
				}
				fmt.Printf("Seeded %-14s base %7.2f  final %7.2f\n", item.Name, item.BasePrice, item.FinalPrice)
			}
			return nil
		},
	}
}
