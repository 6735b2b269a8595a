package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/config"
	"github.com/campuspulse/engage-go/internal/domain/user"
	"github.com/campuspulse/engage-go/internal/stub"
)

// stubserver runs the in-memory platform stand-in so front-ends can be
// developed without the real backend. Demo logins: alice/password etc.
func main() {
	config.LoadConfig()

	dbPath := os.Getenv("STUB_DB")
	db, err := openDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open stub database: %v", err)
	}

	var accounts int64
	db.Model(&user.Account{}).Count(&accounts)
	if accounts == 0 {
		if err := stub.Seed(db); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeded demo data")
	}

	gin.SetMode(gin.ReleaseMode)
	server := stub.NewServer(db)

	addr := ":" + config.StubPort
	log.Printf("Starting platform stub on %s", addr)
	if err := server.Router().Run(addr); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func openDB(path string) (db *gorm.DB, err error) {
	if path == "" {
		return stub.OpenMemory()
	}
	return stub.Open(path)
}
