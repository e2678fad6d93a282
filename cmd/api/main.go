package main

import (
	_ "cemiterio_api/docs"
	"cemiterio_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Cemetery Back Office API
// @version         1.0
// @description     Gravesites, contracts, plot-holders and burials with consistent occupancy.

// @contact.name   Cemetery Administration
// @contact.email  suporte@cemiterio.local

// @host      localhost:8080
// @BasePath  /

func main() {
	routes.Run()
}
