// Command admin is an operator CLI for account roles. Staff accounts are
// never created through the public API; someone with database access
// promotes a registered citizen instead.
package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vozurbana/backend/internal/config"
	"vozurbana/backend/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <promote|demote|show> <email>")
		os.Exit(1)
	}
	command := os.Args[1]

	switch command {
	case "promote":
		setPapel(db, requireEmail(), config.PapelFuncionario)
	case "demote":
		setPapel(db, requireEmail(), config.PapelCidadao)
	case "show":
		email := requireEmail()
		var u models.Usuario
		if err := db.Where("email = ?", email).First(&u).Error; err != nil {
			log.Fatalf("user %s not found: %v", email, err)
		}
		fmt.Printf("id=%d nome=%q email=%s papel=%s\n", u.ID, u.Nome, u.Email, u.Papel)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func requireEmail() string {
	if len(os.Args) != 3 {
		fmt.Println("Usage: admin <promote|demote|show> <email>")
		os.Exit(1)
	}
	return os.Args[2]
}

func setPapel(db *gorm.DB, email, papel string) {
	res := db.Model(&models.Usuario{}).Where("email = ?", email).Update("papel", papel)
	if res.Error != nil {
		log.Fatalf("failed to update role: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		log.Fatalf("user %s not found", email)
	}
	fmt.Printf("User %s is now %s.\n", email, papel)
}
