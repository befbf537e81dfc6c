package main

import (
	_ "paysadmin/docs"
	"paysadmin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           19Pays Admin API
// @version         1.0
// @description     Back office for operators: user directory, KYC and bank details, Aadhaar documents and the debt request workflow.
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
// @description Type "Bearer" followed by a space and the session key returned by /auth/login.

func main() {
	routes.Run()
}
