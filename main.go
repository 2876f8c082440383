package main

import (
	"flag"
	"log"

	"github.com/treedo/treedo-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	flag.Parse()

	if !*shouldRunMigrations && !*shouldRunServer {
		flag.Usage()
		return
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
