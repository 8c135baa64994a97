package config

func (c *Config) GetBotToken() string {
	return c.v.GetString("bot_token")
}

func (c *Config) GetQuotesPath() string {
	return c.v.GetString("quotes_path")
}

func (c *Config) GetLogDir() string {
	return c.v.GetString("log_dir")
}

// GetString returns the string value for a given config key
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}
