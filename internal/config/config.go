package config

import "github.com/spf13/viper"

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Data struct {
		GenreMap    string `mapstructure:"genre_map"`
		TourLedger  string `mapstructure:"tour_ledger"`
		PriceLedger string `mapstructure:"price_ledger"`
	} `mapstructure:"data"`

	Artifacts struct {
		Dir string
	} `mapstructure:"artifacts"`

	Predict struct {
		URL string
	} `mapstructure:"predict"`

	Output struct {
		Dir string
	} `mapstructure:"output"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
