// Command seed prepares a fresh database: schema, admin account, the initial
// site configuration row and default content sections.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"weddingapi/internal/domain"
)

func main() {
	_ = godotenv.Load()

	adminEmail := flag.String("admin-email", envOr("ADMIN_EMAIL", "admin@casamento.local"), "admin account email")
	adminName := flag.String("admin-name", envOr("ADMIN_NAME", "Administrador"), "admin account name")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "admin account password")
	flag.Parse()

	if *adminPassword == "" {
		fatal(fmt.Errorf("ADMIN_PASSWORD (or -admin-password) is required"))
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fatal(fmt.Errorf("DATABASE_URL is required"))
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		fatal(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		fatal(fmt.Errorf("ping database: %w", err))
	}

	if err := createSchema(db); err != nil {
		fatal(err)
	}
	if err := seedAdmin(db, *adminName, *adminEmail, *adminPassword); err != nil {
		fatal(err)
	}
	if err := seedConfig(db); err != nil {
		fatal(err)
	}
	if err := seedContents(db); err != nil {
		fatal(err)
	}

	fmt.Println("seed complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "seed:", err)
	os.Exit(1)
}

func createSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

func seedAdmin(db *sql.DB, name, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = db.Exec(`
		insert into users (name, email, password_hash)
		values ($1, $2, $3)
		on conflict (email) do update set name = excluded.name, password_hash = excluded.password_hash
	`, name, email, string(hash))
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func seedConfig(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`select count(*) from site_config`).Scan(&count); err != nil {
		return fmt.Errorf("count config: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(`insert into site_config (site_title) values ($1)`, "Marília & Iago")
	if err != nil {
		return fmt.Errorf("seed config: %w", err)
	}
	return nil
}

func seedContents(db *sql.DB) error {
	for _, section := range []string{domain.SectionHome, domain.SectionHistory, domain.SectionInfo} {
		_, err := db.Exec(`
			insert into contents (section, body)
			values ($1, $2)
			on conflict (section) do nothing
		`, section, domain.DefaultContent(section))
		if err != nil {
			return fmt.Errorf("seed content %s: %w", section, err)
		}
	}
	return nil
}
