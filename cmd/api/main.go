package main

import (
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           TreeShop Proposal Service API
// @version         1.0
// @description     Quote pricing and proposal lifecycle service (quotes, approvals, deposits) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
