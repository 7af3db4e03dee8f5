package main

import (
	"github.com/Jezzej/craftique/internals/config"
	"github.com/Jezzej/craftique/internals/initializers"
	"github.com/Jezzej/craftique/internals/routes"
)

func init() {
	initializers.LoadEnvVariables()
	initializers.ConnectToDb()
	initializers.SyncDatabase()

	initializers.StartExpiredRecordCleanup()
}

func main() {
	r := routes.SetupRouter(initializers.DB)

	r.Run(":" + config.GetEnvAsStr("PORT", "8000"))
}
