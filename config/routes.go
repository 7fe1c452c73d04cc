package config

import "github.com/spf13/viper"

// Routes navigation config struct
type Routes struct {
	Landing      string
	Login        string
	MaxRedirects int
}

func getRoutesConfig(v *viper.Viper) *Routes {
	return &Routes{
		Landing:      getStringOrDefault(v, "routes.landing", "home"),
		Login:        getStringOrDefault(v, "routes.login", "login"),
		MaxRedirects: getIntOrDefault(v, "routes.max_redirects", 8),
	}
}
