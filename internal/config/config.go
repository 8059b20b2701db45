package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	ListenAddr      string `yaml:"listen_addr"`
	LogLevel        string `yaml:"log_level"`
	LogJSON         bool   `yaml:"log_json"`
	ThreadsPerBoard int    `yaml:"threads_per_board"` // listing window size
	RepliesPreview  int    `yaml:"replies_preview"`   // number of newest replies embedded per listed thread
	Pg              Pg     `yaml:"pg"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

// Private holds secrets kept out of the public config file.
type Private struct {
	PgPassword string `yaml:"pg_password"`
}

func (c *Config) PgPassword() string {
	return c.Private.PgPassword
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if public.Pg.Host == "" || public.Pg.Dbname == "" || public.Pg.User == "" {
		panic("pg host, user and dbname are required")
	}
	applyDefaults(&public)

	return &Config{public, private}
}

func applyDefaults(public *Public) {
	if public.ListenAddr == "" {
		public.ListenAddr = ":8080"
	}
	if public.LogLevel == "" {
		public.LogLevel = "info"
	}
	if public.ThreadsPerBoard == 0 {
		public.ThreadsPerBoard = 10
	}
	if public.RepliesPreview == 0 {
		public.RepliesPreview = 3
	}
	if public.Pg.Port == 0 {
		public.Pg.Port = 5432
	}
}
