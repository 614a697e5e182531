// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret string   `json:"session_secret"`
		SessionTTL    Duration `json:"session_ttl"`
		PasswordCost  int      `json:"password_cost"`
		PublicURL     string   `json:"public_url"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			AuthToken    string `json:"auth_token"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
			Migrate      bool   `json:"migrate"`
		} `json:"db,omitempty"`

		Session struct {
			Backend    string `json:"backend"`
			RedisURL   string `json:"redis_url"`
			CookieName string `json:"cookie_name"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		SecureCookies  bool     `json:"secure_cookies"`
	} `json:"server,omitempty"`

	Notifier struct {
		ResendAPIKey string   `json:"resend_api_key"`
		FromEmail    string   `json:"from_email"`
		FromName     string   `json:"from_name"`
		QueueSize    int      `json:"queue_size"`
		SendTimeout  Duration `json:"send_timeout"`
	} `json:"notifier,omitempty"`

	Workers struct {
		NotifierWorkers      int      `json:"notifier_workers"`
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret: jsonCfg.App.SessionSecret,
			SessionTTL:    time.Duration(jsonCfg.App.SessionTTL),
			PasswordCost:  jsonCfg.App.PasswordCost,
			PublicURL:     jsonCfg.App.PublicURL,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				AuthToken:    jsonCfg.Storage.DB.AuthToken,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
				Migrate:      jsonCfg.Storage.DB.Migrate,
			},
			Session: Session{
				Backend:    jsonCfg.Storage.Session.Backend,
				RedisURL:   jsonCfg.Storage.Session.RedisURL,
				CookieName: jsonCfg.Storage.Session.CookieName,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			SecureCookies:  jsonCfg.Server.SecureCookies,
		},
		Notifier: Notifier{
			ResendAPIKey: jsonCfg.Notifier.ResendAPIKey,
			FromEmail:    jsonCfg.Notifier.FromEmail,
			FromName:     jsonCfg.Notifier.FromName,
			QueueSize:    jsonCfg.Notifier.QueueSize,
			SendTimeout:  time.Duration(jsonCfg.Notifier.SendTimeout),
		},
		Workers: Workers{
			NotifierWorkers:      jsonCfg.Workers.NotifierWorkers,
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
