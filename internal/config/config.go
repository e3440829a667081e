package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tiempos-pupi/tiempos-api/internal/domain"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Rollover Rollover `mapstructure:",squash"`
	Sellers  sellers  `mapstructure:",squash"`
	// SecretKey firma los tokens JWT
	SecretKey string `mapstructure:"secret_key"`

	// SellerSettings indexa la configuración por vendedor, armada en NewConfig
	SellerSettings map[string]Seller `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Rollover controla el agendador que crea la semana siguiente automáticamente
type Rollover struct {
	CronSchedule string `mapstructure:"week_rollover_cron"`
	Enabled      bool   `mapstructure:"week_rollover_enabled"`
}

// Seller es la política de cálculo de un vendedor: su país de sorteos, cómo
// se obtiene la ganancia y con qué signo entran los movimientos. Las dos
// fórmulas de ganancia y los dos signos existen en producción; nunca se
// fija una sola en el código.
type Seller struct {
	Country            string
	ProfitPolicy       string
	MovementConvention string
}

// claves planas por vendedor, al estilo .env
type sellers struct {
	GreivinCountry    string `mapstructure:"greivin_country"`
	GreivinPolicy     string `mapstructure:"greivin_profit_policy"`
	GreivinConvention string `mapstructure:"greivin_movement_convention"`
	OscarCountry      string `mapstructure:"oscar_country"`
	OscarPolicy       string `mapstructure:"oscar_profit_policy"`
	OscarConvention   string `mapstructure:"oscar_movement_convention"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/tiempos")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Greivin no asume el riesgo de premios: su ganancia es la comisión y los
	// adelantos se restan
	viper.SetDefault("GREIVIN_COUNTRY", domain.CountryCostaRica)
	viper.SetDefault("GREIVIN_PROFIT_POLICY", "commission")
	viper.SetDefault("GREIVIN_MOVEMENT_CONVENTION", "subtract")

	// Oscar opera por margen; en su página original los adelantos se SUMAN.
	// Se conserva esa convención hasta que negocio confirme lo contrario.
	viper.SetDefault("OSCAR_COUNTRY", domain.CountryNicaragua)
	viper.SetDefault("OSCAR_PROFIT_POLICY", "margin")
	viper.SetDefault("OSCAR_MOVEMENT_CONVENTION", "add")

	viper.SetDefault("WEEK_ROLLOVER_CRON", "0 0 * * 1") // lunes a medianoche
	viper.SetDefault("WEEK_ROLLOVER_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env con godotenv
	loadEnvFile() // SOLO LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.SellerSettings = map[string]Seller{
		domain.SellerGreivin: {
			Country:            config.Sellers.GreivinCountry,
			ProfitPolicy:       config.Sellers.GreivinPolicy,
			MovementConvention: config.Sellers.GreivinConvention,
		},
		domain.SellerOscar: {
			Country:            config.Sellers.OscarCountry,
			ProfitPolicy:       config.Sellers.OscarPolicy,
			MovementConvention: config.Sellers.OscarConvention,
		},
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// SellerFor devuelve la configuración del vendedor, o false si no existe.
func (c *Config) SellerFor(seller string) (Seller, bool) {
	settings, ok := c.SellerSettings[seller]
	return settings, ok
}

// loadEnvFile carga el archivo .env con godotenv probando varias rutas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Archivo .env cargado desde:", location)
			return
		}
	}

	logrus.Warn("No se encontró un archivo .env en ninguna ruta conocida")
}
