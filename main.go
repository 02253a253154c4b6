package main

import (
	"fmt"
	"recipe-api/api"
	"recipe-api/config"
	"recipe-api/db"
	"recipe-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	godotenv.Load()

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	if spec := config.SuperuserFlag(); spec != "" {
		d, err := db.New()
		if err != nil {
			panic(err)
		}

		user, err := db.CreateSuperuser(d, security.NewHasher(), spec)
		if err != nil {
			panic(err)
		}

		fmt.Printf("Created superuser %s (%s)\n", user.Email, user.ID)
		return
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
