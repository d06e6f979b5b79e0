// Command token mints HS256 bearer tokens for local development and manual
// testing against the lockbox API.
//
// Usage:
//
//	token -u auth0|user-a -p read:secrets,write:secrets -s secretKey -t 60
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/server/auth"
)

func main() {
	subject := flag.String("u", "", "token subject (user id)")
	permissions := flag.String("p", "", "comma-separated permissions")
	secretKey := flag.String("s", "secretKey", "JWT HMAC secret key")
	validity := flag.Int("t", 60, "token validity (in minutes)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "token: -u (subject) is required")
		os.Exit(2)
	}

	var perms []string
	for _, p := range strings.Split(*permissions, ",") {
		if p = strings.TrimSpace(p); p != "" {
			perms = append(perms, p)
		}
	}

	tok, err := auth.GenerateToken(*subject, perms, []byte(*secretKey), time.Duration(*validity)*time.Minute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
