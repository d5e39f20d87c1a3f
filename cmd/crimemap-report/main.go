package main

import (
	"github.com/joho/godotenv"

	"crimemap/internal/services/report"
)

func main() {
	_ = godotenv.Load(".env")
	report.Main()
}
