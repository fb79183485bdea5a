// admintoken prints a signed bearer token for the admin API.
//
//	go run ./cmd/admintoken -id ops@example.com -hours 24
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/yucheng-lo/foundbot/internal/config"
	"github.com/yucheng-lo/foundbot/internal/pkg/token"
)

func main() {
	id := flag.String("id", "admin", "admin identifier embedded in the token")
	hours := flag.Int("hours", 0, "token lifetime in hours (default from JWT_EXPIRE_HOURS)")
	flag.Parse()

	cfg := config.Load()
	ttl := cfg.JWTExpireHours
	if *hours > 0 {
		ttl = *hours
	}

	signed, err := token.NewManager(cfg.JWTSecret, ttl).Generate(*id)
	if err != nil {
		log.Fatal("Failed to generate token:", err)
	}

	fmt.Println(signed)
}
