// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender")
	v.BindEnv("mail.password", "mail_password")

	v.BindEnv("storage.s3.enabled", "storage_s3_enabled")
	v.BindEnv("storage.s3.access_key_id", "storage_s3_access_key_id")
	v.BindEnv("storage.s3.secret_access_key", "storage_s3_secret_access_key")
	v.BindEnv("storage.s3.bucket", "storage_s3_bucket")
	v.BindEnv("storage.s3.region", "storage_s3_region")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("mail.port", 587)

	v.SetDefault("storage.s3.enabled", false)

	v.SetDefault("pagination.per_page", 10)
	v.SetDefault("pagination.max_per_page", 250)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("no database DSN provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetString("mail.host") == "" {
		return errors.New("no mail host provided")
	}

	if v.GetString("mail.sender") == "" {
		return errors.New("no mail sender address provided")
	}

	if v.GetInt("mail.port") <= 0 {
		return errors.New("invalid mail port provided")
	}

	if v.GetInt("pagination.per_page") <= 0 {
		return errors.New("pagination.per_page must be bigger than 0")
	}

	if v.GetBool("storage.s3.enabled") {
		if v.GetString("storage.s3.access_key_id") == "" {
			return errors.New("access key id can't be empty")
		}
		if v.GetString("storage.s3.secret_access_key") == "" {
			return errors.New("secret access key can't be empty")
		}
		if v.GetString("storage.s3.bucket") == "" {
			return errors.New("bucket can't be empty")
		}
		if v.GetString("storage.s3.region") == "" {
			return errors.New("region can't be empty")
		}
	}

	return nil
}
