package main

import (
	"os"

	_ "oficina_xyz/docs"
	"oficina_xyz/internal/adapter/http/routes"
	"oficina_xyz/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina XYZ API
// @version         1.0
// @description     Multi-tenant workshop management API (service orders, stock, ledger, AI assistant) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init("oficina-xyz-api", os.Getenv("GIN_MODE") != "release")
	routes.Run()
}
