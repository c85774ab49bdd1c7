package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	AdminEmail        string
	AdminPasswordHash string
	MediaCloudName    string
	MediaFolder       string
	StalePendingTTL   time.Duration
}
