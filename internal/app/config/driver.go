package config

type (
	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}
	Redis struct {
		Host     string `validate:"required"`
		Port     string `validate:"required"`
		Password string
		DB       int `validate:"gte=0"`
	}
	Logger struct {
		Level               string `validate:"oneof=debug info warn error"`
		OutputFileName      string
		OutputErrorFileName string
	}
)
